package dto

import (
	"time"

	"github.com/harutok/practiceshare/internal/app/models"
)

// CreateContactRequest represents a parent inquiry submission
type CreateContactRequest struct {
	PracticeID  string `json:"practiceId" binding:"required"`
	ParentName  string `json:"parentName" binding:"required"`
	ParentEmail string `json:"parentEmail" binding:"required,email"`
	ChildAge    int    `json:"childAge" binding:"required,min=6,max=15"`
	Message     string `json:"message" binding:"required,max=2000"`
}

// ContactCreatedResponse acknowledges a stored inquiry without echoing it
type ContactCreatedResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateContactStatusRequest moves an inquiry through its lifecycle
type UpdateContactStatusRequest struct {
	Status models.ContactStatus `json:"status" binding:"required"`
}

// ContactListItem is one row of the educator's inbox
type ContactListItem struct {
	models.Contact
	PracticeTitle string `json:"practiceTitle"`
}
