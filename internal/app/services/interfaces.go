package services

import (
	"context"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
)

// Repository interfaces consumed by the services. The concrete pgx-backed
// implementations live in the repositories package; tests substitute mocks.

// EducatorRepository is the educator persistence surface
type EducatorRepository interface {
	Create(ctx context.Context, e *models.Educator) error
	GetByID(ctx context.Context, id string) (*models.Educator, error)
	GetByEmail(ctx context.Context, email string) (*models.Educator, error)
	UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*models.Educator, error)
	CountPractices(ctx context.Context, educatorID string) (int, error)
}

// PracticeRepository is the teaching practice persistence surface
type PracticeRepository interface {
	GetAll(ctx context.Context, filter *dto.PracticeFilter, page, limit int) ([]dto.PracticeListItem, int, error)
	GetByID(ctx context.Context, id string) (*models.Practice, error)
	GetOwnerInfo(ctx context.Context, id string) (*models.Practice, error)
	Create(ctx context.Context, p *models.Practice) error
	Update(ctx context.Context, id string, req *dto.UpdatePracticeRequest) (*models.Practice, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository is the comment persistence surface
type CommentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	GetByPractice(ctx context.Context, practiceID string, page, limit int) ([]models.Comment, int, error)
	GetRecentByPractice(ctx context.Context, practiceID string, limit int) ([]models.Comment, error)
	Delete(ctx context.Context, id string) error
}

// RatingRepository is the rating persistence surface
type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetBySession(ctx context.Context, practiceID, sessionID string) (*models.Rating, error)
	GetStats(ctx context.Context, practiceID string) (*models.RatingStats, error)
	GetAverageAndCount(ctx context.Context, practiceID string) (float64, int, error)
}

// ContactRepository is the parent inquiry persistence surface
type ContactRepository interface {
	Create(ctx context.Context, c *models.Contact) error
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	GetByEducator(ctx context.Context, educatorID string, status models.ContactStatus, page, limit int) ([]dto.ContactListItem, int, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error)
}

// MediaRepository is the uploaded file metadata persistence surface
type MediaRepository interface {
	Create(ctx context.Context, m *models.Media) error
	GetByID(ctx context.Context, id string) (*models.Media, *string, error)
	GetByPractice(ctx context.Context, practiceID string) ([]models.Media, error)
	Delete(ctx context.Context, id string) error
	PracticeExists(ctx context.Context, practiceID string) (bool, error)
}

// TokenGenerator signs access tokens for authenticated educators
type TokenGenerator interface {
	GenerateToken(educatorID, email string) (string, error)
}
