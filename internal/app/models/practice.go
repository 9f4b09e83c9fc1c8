package models

import (
	"time"
)

// Practice defines the teaching practice model based on the 'practices' table
type Practice struct {
	ID                  string        `json:"id" db:"id"`
	EducatorID          string        `json:"educatorId" db:"educator_id"`
	Title               string        `json:"title" db:"title"`
	Description         string        `json:"description" db:"description"`
	Subject             string        `json:"subject" db:"subject" example:"算数"`
	GradeLevel          GradeLevel    `json:"gradeLevel" db:"grade_level" example:"小3"`
	LearningLevel       LearningLevel `json:"learningLevel" db:"learning_level" example:"standard"`
	SpecialNeeds        bool          `json:"specialNeeds" db:"special_needs"`
	SpecialNeedsDetails *string       `json:"specialNeedsDetails,omitempty" db:"special_needs_details"` // Only set when SpecialNeeds is true
	ImplementationDate  time.Time     `json:"implementationDate" db:"implementation_date"`
	Tags                []string      `json:"tags" db:"tags"`
	IsPublished         bool          `json:"isPublished" db:"is_published"`
	CreatedAt           time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time     `json:"updatedAt" db:"updated_at"`

	Educator *Educator `json:"educator,omitempty"` // Relation, no db tag
	Media    []Media   `json:"media,omitempty"`    // Relation, no db tag
}
