package models

import (
	"time"
)

// Rating defines the rating model based on the 'ratings' table.
// A session (or, failing that, a client IP) can rate a practice once;
// repeat submissions update the existing row.
type Rating struct {
	ID         string    `json:"id" db:"id"`
	PracticeID string    `json:"practiceId" db:"practice_id"`
	SessionID  string    `json:"-" db:"session_id"` // Anonymous rater key, never exposed
	Score      int       `json:"value" db:"score" example:"4"` // Wire name kept as "value"
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// RatingStats aggregates the ratings of one practice
type RatingStats struct {
	Average      float64     `json:"average" example:"4.2"` // Rounded to one decimal
	Total        int         `json:"total" example:"17"`
	Distribution map[int]int `json:"distribution"` // Zero-filled counts for scores 1..5
}
