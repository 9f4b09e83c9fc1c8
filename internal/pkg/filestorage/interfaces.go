package filestorage

import "mime/multipart"

// StoredFile describes a file persisted by a Storage implementation.
type StoredFile struct {
	Filename     string // generated name on disk
	OriginalName string // name the client uploaded
	MimeType     string
	Size         int64
	URL          string // public URL path for the file
}

// Storage defines the interface for upload storage operations.
// Validate must be called (and pass) before Save writes anything to disk.
type Storage interface {
	Validate(fileHeader *multipart.FileHeader) error
	Save(fileHeader *multipart.FileHeader) (*StoredFile, error)
	Delete(filename string) error
}
