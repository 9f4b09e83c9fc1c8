package services

import (
	"context"
	"mime/multipart"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/filestorage"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// MediaService defines the interface for upload operations
type MediaService interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, practiceID *string) (*models.Media, error)
	Delete(ctx context.Context, id, educatorID string) error
	ListByPractice(ctx context.Context, practiceID string) ([]models.Media, error)
}

// mediaServiceImpl implements MediaService
type mediaServiceImpl struct {
	mediaRepo MediaRepository
	storage   filestorage.Storage
}

// NewMediaService creates a new MediaService
func NewMediaService(mediaRepo MediaRepository, storage filestorage.Storage) MediaService {
	return &mediaServiceImpl{
		mediaRepo: mediaRepo,
		storage:   storage,
	}
}

// Upload validates and stores a file, then records its metadata. When a
// practice id is supplied it must exist; the check happens before any disk
// write.
func (s *mediaServiceImpl) Upload(ctx context.Context, fileHeader *multipart.FileHeader, practiceID *string) (*models.Media, error) {
	if err := s.storage.Validate(fileHeader); err != nil {
		return nil, err
	}

	if practiceID != nil && *practiceID != "" {
		exists, err := s.mediaRepo.PracticeExists(ctx, *practiceID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrPracticeNotFound
		}
	} else {
		practiceID = nil
	}

	stored, err := s.storage.Save(fileHeader)
	if err != nil {
		return nil, err
	}

	media := &models.Media{
		PracticeID:   practiceID,
		Filename:     stored.Filename,
		OriginalName: stored.OriginalName,
		MimeType:     stored.MimeType,
		Size:         stored.Size,
		URL:          stored.URL,
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		// The metadata row is the source of truth; without it the file is
		// unreachable, so clean it up.
		if delErr := s.storage.Delete(stored.Filename); delErr != nil {
			logger.Warn().Err(delErr).Str("filename", stored.Filename).Msg("Failed to remove orphan upload")
		}
		return nil, err
	}

	return media, nil
}

// Delete unlinks the stored file (best effort) and removes the metadata row.
// A file linked to a practice may only be deleted by that practice's owner.
func (s *mediaServiceImpl) Delete(ctx context.Context, id, educatorID string) error {
	media, ownerID, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if ownerID != nil && *ownerID != educatorID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.storage.Delete(media.Filename); err != nil {
		logger.Warn().Err(err).Str("filename", media.Filename).Msg("Failed to unlink stored file")
	}

	return s.mediaRepo.Delete(ctx, id)
}

// ListByPractice retrieves the media rows of a practice, newest first
func (s *mediaServiceImpl) ListByPractice(ctx context.Context, practiceID string) ([]models.Media, error) {
	return s.mediaRepo.GetByPractice(ctx, practiceID)
}
