package dto

import (
	"time"

	"github.com/harutok/practiceshare/internal/app/models"
)

// RegisterRequest represents educator registration data
type RegisterRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	Name        string   `json:"name" binding:"required"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// EducatorResponse represents public educator information (no credentials)
type EducatorResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio"`
	Specialties    []string  `json:"specialties"`
	ContactEnabled bool      `json:"contactEnabled"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewEducatorResponse maps an educator model to its public representation
func NewEducatorResponse(e *models.Educator) EducatorResponse {
	specialties := e.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return EducatorResponse{
		ID:             e.ID,
		Email:          e.Email,
		Name:           e.Name,
		Bio:            e.Bio,
		Specialties:    specialties,
		ContactEnabled: e.ContactEnabled,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Educator EducatorResponse `json:"educator"`
	Token    string           `json:"token"`
}

// ProfileResponse is the authenticated educator's own profile
type ProfileResponse struct {
	EducatorResponse
	PracticesCount int `json:"practicesCount"`
}

// UpdateProfileRequest represents a partial profile update; nil fields are
// left unchanged
type UpdateProfileRequest struct {
	Name           *string   `json:"name"`
	Bio            *string   `json:"bio"`
	Specialties    *[]string `json:"specialties"`
	ContactEnabled *bool     `json:"contactEnabled"`
}
