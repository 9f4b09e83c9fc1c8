package models

import (
	"time"
)

// Contact defines the parent inquiry model based on the 'contacts' table
type Contact struct {
	ID          string        `json:"id" db:"id"`
	PracticeID  string        `json:"practiceId" db:"practice_id"`
	ParentName  string        `json:"parentName" db:"parent_name"`
	ParentEmail string        `json:"parentEmail" db:"parent_email"`
	ChildAge    int           `json:"childAge" db:"child_age" example:"9"`
	Message     string        `json:"message" db:"message"`
	Status      ContactStatus `json:"status" db:"status" example:"new"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`

	Practice *Practice `json:"practice,omitempty"` // Relation, no db tag
}
