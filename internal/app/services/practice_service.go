package services

import (
	"context"

	"github.com/harutok/practiceshare/internal/app/auth"
	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
)

// Recent comments included on the detail payload.
const detailCommentLimit = 10

// PracticeService defines the interface for teaching practice operations
type PracticeService interface {
	List(ctx context.Context, filter *dto.PracticeFilter, page, limit int) ([]dto.PracticeListItem, int, error)
	GetDetail(ctx context.Context, id, viewerID string) (*dto.PracticeDetailResponse, error)
	Create(ctx context.Context, educatorID string, req *dto.CreatePracticeRequest) (*models.Practice, error)
	Update(ctx context.Context, id, educatorID string, req *dto.UpdatePracticeRequest) (*models.Practice, error)
	Delete(ctx context.Context, id, educatorID string) error
}

// practiceServiceImpl implements PracticeService
type practiceServiceImpl struct {
	practiceRepo PracticeRepository
	commentRepo  CommentRepository
	ratingRepo   RatingRepository
	mediaRepo    MediaRepository
	authzService *auth.AuthorizationService
}

// NewPracticeService creates a new PracticeService
func NewPracticeService(
	practiceRepo PracticeRepository,
	commentRepo CommentRepository,
	ratingRepo RatingRepository,
	mediaRepo MediaRepository,
	authzService *auth.AuthorizationService,
) PracticeService {
	return &practiceServiceImpl{
		practiceRepo: practiceRepo,
		commentRepo:  commentRepo,
		ratingRepo:   ratingRepo,
		mediaRepo:    mediaRepo,
		authzService: authzService,
	}
}

// List retrieves published practices matching the filter, newest first
func (s *practiceServiceImpl) List(ctx context.Context, filter *dto.PracticeFilter, page, limit int) ([]dto.PracticeListItem, int, error) {
	return s.practiceRepo.GetAll(ctx, filter, page, limit)
}

// GetDetail retrieves one practice with its rating aggregate, recent comments
// and media. Unpublished practices are only visible to their owner; everyone
// else gets NotFound.
func (s *practiceServiceImpl) GetDetail(ctx context.Context, id, viewerID string) (*dto.PracticeDetailResponse, error) {
	practice, err := s.practiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.CanViewPractice(practice, viewerID); err != nil {
		return nil, err
	}

	average, count, err := s.ratingRepo.GetAverageAndCount(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetRecentByPractice(ctx, id, detailCommentLimit)
	if err != nil {
		return nil, err
	}

	media, err := s.mediaRepo.GetByPractice(ctx, id)
	if err != nil {
		return nil, err
	}
	practice.Media = media

	return &dto.PracticeDetailResponse{
		Practice:      *practice,
		AverageRating: average,
		RatingsCount:  count,
		Comments:      comments,
	}, nil
}

// Create stores a new practice owned by the caller
func (s *practiceServiceImpl) Create(ctx context.Context, educatorID string, req *dto.CreatePracticeRequest) (*models.Practice, error) {
	if !req.GradeLevel.IsValid() {
		return nil, apperrors.NewValidationError("invalid grade level")
	}
	if !req.LearningLevel.IsValid() {
		return nil, apperrors.NewValidationError("invalid learning level")
	}

	practice := &models.Practice{
		EducatorID:          educatorID,
		Title:               req.Title,
		Description:         req.Description,
		Subject:             req.Subject,
		GradeLevel:          req.GradeLevel,
		LearningLevel:       req.LearningLevel,
		SpecialNeeds:        req.SpecialNeeds,
		SpecialNeedsDetails: req.SpecialNeedsDetails,
		ImplementationDate:  req.ImplementationDate,
		Tags:                req.Tags,
		IsPublished:         req.IsPublished,
	}

	if err := s.practiceRepo.Create(ctx, practice); err != nil {
		return nil, err
	}

	return s.practiceRepo.GetByID(ctx, practice.ID)
}

// Update applies a partial update after verifying ownership
func (s *practiceServiceImpl) Update(ctx context.Context, id, educatorID string, req *dto.UpdatePracticeRequest) (*models.Practice, error) {
	if req.GradeLevel != nil && !req.GradeLevel.IsValid() {
		return nil, apperrors.NewValidationError("invalid grade level")
	}
	if req.LearningLevel != nil && !req.LearningLevel.IsValid() {
		return nil, apperrors.NewValidationError("invalid learning level")
	}

	if _, err := s.authzService.RequirePracticeOwner(ctx, id, educatorID); err != nil {
		return nil, err
	}

	return s.practiceRepo.Update(ctx, id, req)
}

// Delete removes a practice after verifying ownership; dependent rows cascade
func (s *practiceServiceImpl) Delete(ctx context.Context, id, educatorID string) error {
	if _, err := s.authzService.RequirePracticeOwner(ctx, id, educatorID); err != nil {
		return err
	}

	return s.practiceRepo.Delete(ctx, id)
}
