package services

import (
	"context"

	"github.com/harutok/practiceshare/internal/app/auth"
	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
)

// RatingService defines the interface for rating operations
type RatingService interface {
	Rate(ctx context.Context, req *dto.CreateRatingRequest, clientIP string) (*models.Rating, error)
	Stats(ctx context.Context, practiceID string) (*models.RatingStats, error)
	UserRating(ctx context.Context, practiceID, sessionID, clientIP string) (*int, error)
}

// ratingServiceImpl implements RatingService
type ratingServiceImpl struct {
	ratingRepo   RatingRepository
	authzService *auth.AuthorizationService
}

// NewRatingService creates a new RatingService
func NewRatingService(ratingRepo RatingRepository, authzService *auth.AuthorizationService) RatingService {
	return &ratingServiceImpl{
		ratingRepo:   ratingRepo,
		authzService: authzService,
	}
}

// raterKey picks the deduplication key for an anonymous rater: an explicit
// session id when the client sent one, otherwise its IP address.
func raterKey(sessionID, clientIP string) string {
	if sessionID != "" {
		return sessionID
	}
	return clientIP
}

// Rate records a rating on a published practice. One rating per rater per
// practice; a repeat submission replaces the earlier score.
func (s *ratingServiceImpl) Rate(ctx context.Context, req *dto.CreateRatingRequest, clientIP string) (*models.Rating, error) {
	if _, err := s.authzService.RequirePublishedPractice(ctx, req.PracticeID); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		PracticeID: req.PracticeID,
		SessionID:  raterKey(req.SessionID, clientIP),
		Score:      req.Value,
	}

	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

// Stats aggregates the ratings of a practice. A practice with no ratings
// yields zero values and a zero-filled distribution.
func (s *ratingServiceImpl) Stats(ctx context.Context, practiceID string) (*models.RatingStats, error) {
	return s.ratingRepo.GetStats(ctx, practiceID)
}

// UserRating returns the caller's own score for a practice, nil when the
// caller has not rated it
func (s *ratingServiceImpl) UserRating(ctx context.Context, practiceID, sessionID, clientIP string) (*int, error) {
	rating, err := s.ratingRepo.GetBySession(ctx, practiceID, raterKey(sessionID, clientIP))
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, nil
	}
	return &rating.Score, nil
}
