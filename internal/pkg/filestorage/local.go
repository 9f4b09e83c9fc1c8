package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// MaxUploadSize is the largest accepted upload (50 MB).
const MaxUploadSize = 50 * 1024 * 1024

// allowedMimeTypes is the fixed allow-list for uploads: common image, PDF
// and video types.
var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"application/pdf": {},
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
}

// LocalStorage saves uploads to the local filesystem.
type LocalStorage struct {
	basePath string // directory where files are stored
	baseURL  string // URL prefix under which files are served
}

// NewLocalStorage creates a LocalStorage rooted at basePath. Files are
// addressed publicly under baseURL (e.g. "/uploads").
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Validate checks MIME type and size limits. It never touches the disk, so
// a rejected upload leaves no trace.
func (ls *LocalStorage) Validate(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return apperrors.NewValidationError("no file was uploaded")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return apperrors.NewCustomError(apperrors.ErrUnsupportedMediaType,
			fmt.Sprintf("file type %q is not supported", mimeType))
	}

	if fileHeader.Size > MaxUploadSize {
		return apperrors.NewCustomError(apperrors.ErrPayloadTooLarge,
			"file exceeds the 50MB size limit")
	}

	return nil
}

// Save validates and persists an upload under a collision-resistant
// generated name (timestamp plus random suffix plus the original extension).
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader) (*StoredFile, error) {
	if err := ls.Validate(fileHeader); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	filename := generateFilename(fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	stored := &StoredFile{
		Filename:     filename,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		URL:          ls.baseURL + "/" + filename,
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Msg("File saved")
	return stored, nil
}

// Delete removes a stored file. A file that is already gone is not an error;
// the delete is idempotent.
func (ls *LocalStorage) Delete(filename string) error {
	if filename == "" {
		return nil
	}

	// Only the base name is honored; the stored name never contains a path.
	name := filepath.Base(filename)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid filename: %s", filename)
	}

	physicalPath := filepath.Join(ls.basePath, name)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// generateFilename builds the on-disk name for an upload: a millisecond
// timestamp, a random suffix and the original extension.
func generateFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}
