package auth

import (
	"context"
	"errors"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// PracticeReader is the slice of the practice repository the authorization
// service needs.
type PracticeReader interface {
	GetOwnerInfo(ctx context.Context, id string) (*models.Practice, error)
}

// AuthorizationService handles ownership checks. Existence is always checked
// before ownership, so an absent resource surfaces as NotFound rather than
// Forbidden.
type AuthorizationService struct {
	practiceRepo PracticeReader
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(practiceRepo PracticeReader) *AuthorizationService {
	return &AuthorizationService{
		practiceRepo: practiceRepo,
	}
}

// RequirePracticeOwner verifies educatorID owns the practice and returns the
// ownership row
func (s *AuthorizationService) RequirePracticeOwner(ctx context.Context, practiceID, educatorID string) (*models.Practice, error) {
	practice, err := s.practiceRepo.GetOwnerInfo(ctx, practiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPracticeNotFound) {
			return nil, apperrors.ErrPracticeNotFound
		}
		logger.Error().Err(err).Str("practiceID", practiceID).Msg("Error loading practice for ownership check")
		return nil, err
	}

	if practice.EducatorID != educatorID {
		return nil, apperrors.ErrPermissionDenied
	}

	return practice, nil
}

// CanViewPractice decides whether the caller may read a practice. Published
// practices are public. Unpublished ones are visible only to their owner;
// everyone else gets NotFound so drafts do not leak their existence.
func (s *AuthorizationService) CanViewPractice(practice *models.Practice, educatorID string) error {
	if practice.IsPublished {
		return nil
	}
	if educatorID != "" && educatorID == practice.EducatorID {
		return nil
	}
	return apperrors.ErrPracticeNotFound
}

// RequirePublishedPractice loads a practice and verifies it accepts public
// interaction (comments, ratings, contacts).
func (s *AuthorizationService) RequirePublishedPractice(ctx context.Context, practiceID string) (*models.Practice, error) {
	practice, err := s.practiceRepo.GetOwnerInfo(ctx, practiceID)
	if err != nil {
		return nil, err
	}

	if !practice.IsPublished {
		return nil, apperrors.ErrPracticeNotPublished
	}

	return practice, nil
}
