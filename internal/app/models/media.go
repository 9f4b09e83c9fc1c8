package models

import (
	"time"
)

// Media defines the uploaded file metadata model based on the 'media' table
type Media struct {
	ID           string    `json:"id" db:"id"`
	PracticeID   *string   `json:"practiceId,omitempty" db:"practice_id"` // Nullable; orphan uploads are allowed
	Filename     string    `json:"filename" db:"filename"`
	OriginalName string    `json:"originalName" db:"original_name"`
	MimeType     string    `json:"mimeType" db:"mime_type" example:"image/png"`
	Size         int64     `json:"size" db:"size"`
	URL          string    `json:"url" db:"url" example:"/uploads/1716461866123-9f8b.png"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
