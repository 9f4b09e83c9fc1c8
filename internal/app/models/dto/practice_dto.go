package dto

import (
	"time"

	"github.com/harutok/practiceshare/internal/app/models"
)

// CreatePracticeRequest represents the payload for creating a practice
type CreatePracticeRequest struct {
	Title               string               `json:"title" binding:"required"`
	Description         string               `json:"description" binding:"required"`
	Subject             string               `json:"subject" binding:"required"`
	GradeLevel          models.GradeLevel    `json:"gradeLevel" binding:"required"`
	LearningLevel       models.LearningLevel `json:"learningLevel" binding:"required"`
	SpecialNeeds        bool                 `json:"specialNeeds"`
	SpecialNeedsDetails *string              `json:"specialNeedsDetails"`
	ImplementationDate  time.Time            `json:"implementationDate" binding:"required"`
	Tags                []string             `json:"tags"`
	IsPublished         bool                 `json:"isPublished"`
}

// UpdatePracticeRequest represents a partial practice update; nil fields are
// left unchanged
type UpdatePracticeRequest struct {
	Title               *string               `json:"title"`
	Description         *string               `json:"description"`
	Subject             *string               `json:"subject"`
	GradeLevel          *models.GradeLevel    `json:"gradeLevel"`
	LearningLevel       *models.LearningLevel `json:"learningLevel"`
	SpecialNeeds        *bool                 `json:"specialNeeds"`
	SpecialNeedsDetails *string               `json:"specialNeedsDetails"`
	ImplementationDate  *time.Time            `json:"implementationDate"`
	Tags                *[]string             `json:"tags"`
	IsPublished         *bool                 `json:"isPublished"`
}

// PracticeFilter holds the whitelisted equality filters for listings
type PracticeFilter struct {
	Subject       string
	GradeLevel    string
	LearningLevel string
	SpecialNeeds  *bool
	EducatorID    string
	IsPublished   *bool
}

// PracticeListItem is one row of the public listing, carrying the counts the
// index page renders
type PracticeListItem struct {
	models.Practice
	CommentsCount int `json:"commentsCount"`
	RatingsCount  int `json:"ratingsCount"`
}

// PracticeDetailResponse is the full detail payload including the rating
// aggregate and the most recent comments
type PracticeDetailResponse struct {
	models.Practice
	AverageRating float64          `json:"averageRating"`
	RatingsCount  int              `json:"ratingsCount"`
	Comments      []models.Comment `json:"comments"`
}
