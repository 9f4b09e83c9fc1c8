package models

import (
	"time"
)

// Comment defines the public comment model based on the 'comments' table
type Comment struct {
	ID         string    `json:"id" db:"id"`
	PracticeID string    `json:"practiceId" db:"practice_id"`
	AuthorName string    `json:"name" db:"author_name"` // Wire name kept as "name"
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
