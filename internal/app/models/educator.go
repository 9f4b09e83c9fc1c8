package models

import (
	"time"
)

// Educator defines the educator model based on the 'educators' table
type Educator struct {
	ID             string    `json:"id" db:"id" example:"3f1a0c9e-7a36-4a52-b6a1-6a2f5f1f9b10"` // Unique identifier
	Email          string    `json:"email" db:"email" example:"teacher@example.jp"`             // Login email address
	PasswordHash   string    `json:"-" db:"password_hash"`                                      // Hashed password (excluded from JSON)
	Name           string    `json:"name" db:"name" example:"Tanaka Yuki"`                      // Display name
	Bio            string    `json:"bio" db:"bio"`                                              // Free-form introduction
	Specialties    []string  `json:"specialties" db:"specialties"`                              // Subject specialties
	ContactEnabled bool      `json:"contactEnabled" db:"contact_enabled" example:"true"`        // Whether the contact form is open
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
