package services

import (
	"context"

	"github.com/harutok/practiceshare/internal/app/auth"
	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
)

// CommentService defines the interface for comment operations
type CommentService interface {
	Create(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error)
	ListByPractice(ctx context.Context, practiceID string, page, limit int) ([]models.Comment, int, error)
	Delete(ctx context.Context, id, educatorID string) error
}

// commentServiceImpl implements CommentService
type commentServiceImpl struct {
	commentRepo  CommentRepository
	authzService *auth.AuthorizationService
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo CommentRepository, authzService *auth.AuthorizationService) CommentService {
	return &commentServiceImpl{
		commentRepo:  commentRepo,
		authzService: authzService,
	}
}

// Create stores a public comment on a published practice
func (s *commentServiceImpl) Create(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.authzService.RequirePublishedPractice(ctx, req.PracticeID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PracticeID: req.PracticeID,
		AuthorName: req.Name,
		Content:    req.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListByPractice retrieves a page of comments, newest first
func (s *commentServiceImpl) ListByPractice(ctx context.Context, practiceID string, page, limit int) ([]models.Comment, int, error) {
	return s.commentRepo.GetByPractice(ctx, practiceID, page, limit)
}

// Delete removes a comment; only the owner of the parent practice may do so
func (s *commentServiceImpl) Delete(ctx context.Context, id, educatorID string) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.authzService.RequirePracticeOwner(ctx, comment.PracticeID, educatorID); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, id)
}
