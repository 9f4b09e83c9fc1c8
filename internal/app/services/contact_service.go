package services

import (
	"context"

	"github.com/harutok/practiceshare/internal/app/auth"
	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/email"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// ContactService defines the interface for parent inquiry operations
type ContactService interface {
	Create(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactCreatedResponse, error)
	List(ctx context.Context, educatorID string, status models.ContactStatus, page, limit int) ([]dto.ContactListItem, int, error)
	Get(ctx context.Context, id, educatorID string) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id, educatorID string, status models.ContactStatus) (*models.Contact, error)
}

// contactServiceImpl implements ContactService
type contactServiceImpl struct {
	contactRepo  ContactRepository
	practiceRepo PracticeRepository
	authzService *auth.AuthorizationService
	notifier     email.NotificationService
}

// NewContactService creates a new ContactService
func NewContactService(
	contactRepo ContactRepository,
	practiceRepo PracticeRepository,
	authzService *auth.AuthorizationService,
	notifier email.NotificationService,
) ContactService {
	return &contactServiceImpl{
		contactRepo:  contactRepo,
		practiceRepo: practiceRepo,
		authzService: authzService,
		notifier:     notifier,
	}
}

// Create stores a parent inquiry against a published practice whose educator
// accepts contact, then notifies the educator asynchronously. The inquiry is
// stored either way; a failed email never fails the request.
func (s *contactServiceImpl) Create(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactCreatedResponse, error) {
	practice, err := s.practiceRepo.GetOwnerInfo(ctx, req.PracticeID)
	if err != nil {
		return nil, err
	}

	if !practice.IsPublished {
		return nil, apperrors.ErrPracticeNotPublished
	}

	if practice.Educator == nil || !practice.Educator.ContactEnabled {
		return nil, apperrors.ErrContactDisabled
	}

	contact := &models.Contact{
		PracticeID:  req.PracticeID,
		ParentName:  req.ParentName,
		ParentEmail: req.ParentEmail,
		ChildAge:    req.ChildAge,
		Message:     req.Message,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	educator := practice.Educator
	go func() {
		if err := s.notifier.SendNewContactNotification(
			educator.Email, educator.Name, practice.Title, contact.ParentName, contact.Message,
		); err != nil {
			logger.Error().Err(err).Str("contactID", contact.ID).Msg("Failed to send contact notification")
		}
	}()

	return &dto.ContactCreatedResponse{
		ID:        contact.ID,
		CreatedAt: contact.CreatedAt,
	}, nil
}

// List retrieves the educator's inbox, optionally filtered by status
func (s *contactServiceImpl) List(ctx context.Context, educatorID string, status models.ContactStatus, page, limit int) ([]dto.ContactListItem, int, error) {
	return s.contactRepo.GetByEducator(ctx, educatorID, status, page, limit)
}

// Get retrieves one inquiry; only the owner of the target practice may read it
func (s *contactServiceImpl) Get(ctx context.Context, id, educatorID string) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if contact.Practice == nil || contact.Practice.EducatorID != educatorID {
		return nil, apperrors.ErrPermissionDenied
	}

	return contact, nil
}

// UpdateStatus moves an inquiry through its lifecycle after the ownership check
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, educatorID string, status models.ContactStatus) (*models.Contact, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid contact status")
	}

	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if contact.Practice == nil || contact.Practice.EducatorID != educatorID {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.contactRepo.UpdateStatus(ctx, id, status)
}
