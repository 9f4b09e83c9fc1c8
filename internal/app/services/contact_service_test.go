package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutok/practiceshare/internal/app/auth"
	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
)

func contactPracticeFixture(contactEnabled, published bool) *models.Practice {
	p := newPracticeFixture("p1", "e1", published)
	p.Educator = &models.Educator{
		ID:             "e1",
		Email:          "teacher@example.jp",
		Name:           "Tanaka Yuki",
		ContactEnabled: contactEnabled,
	}
	return p
}

func newContactServiceForTest(practiceRepo *mockPracticeRepo, contactRepo *mockContactRepo, notifier *mockNotifier) ContactService {
	return NewContactService(contactRepo, practiceRepo, auth.NewAuthorizationService(practiceRepo), notifier)
}

func validContactRequest() *dto.CreateContactRequest {
	return &dto.CreateContactRequest{
		PracticeID:  "p1",
		ParentName:  "佐藤花子",
		ParentEmail: "parent@example.jp",
		ChildAge:    9,
		Message:     "子どもに合うか相談したいです",
	}
}

func TestContactCreate(t *testing.T) {
	practiceRepo := &mockPracticeRepo{practices: map[string]*models.Practice{
		"p1": contactPracticeFixture(true, true),
	}}
	contactRepo := &mockContactRepo{}
	notifier := newMockNotifier()
	svc := newContactServiceForTest(practiceRepo, contactRepo, notifier)

	resp, err := svc.Create(context.Background(), validContactRequest())
	require.NoError(t, err)
	assert.Equal(t, "contact-new", resp.ID)
	assert.Equal(t, models.ContactStatusNew, contactRepo.created.Status)

	// The notification goes out asynchronously
	select {
	case to := <-notifier.calls:
		assert.Equal(t, "teacher@example.jp", to)
	case <-time.After(time.Second):
		t.Fatal("notification was never sent")
	}
}

func TestContactCreateUnpublishedPractice(t *testing.T) {
	practiceRepo := &mockPracticeRepo{practices: map[string]*models.Practice{
		"p1": contactPracticeFixture(true, false),
	}}
	svc := newContactServiceForTest(practiceRepo, &mockContactRepo{}, newMockNotifier())

	_, err := svc.Create(context.Background(), validContactRequest())
	assert.ErrorIs(t, err, apperrors.ErrPracticeNotPublished)
}

func TestContactCreateContactDisabled(t *testing.T) {
	practiceRepo := &mockPracticeRepo{practices: map[string]*models.Practice{
		"p1": contactPracticeFixture(false, true),
	}}
	contactRepo := &mockContactRepo{}
	svc := newContactServiceForTest(practiceRepo, contactRepo, newMockNotifier())

	_, err := svc.Create(context.Background(), validContactRequest())
	assert.ErrorIs(t, err, apperrors.ErrContactDisabled)
	assert.Nil(t, contactRepo.created)
}

func TestContactCreateUnknownPractice(t *testing.T) {
	svc := newContactServiceForTest(&mockPracticeRepo{}, &mockContactRepo{}, newMockNotifier())

	_, err := svc.Create(context.Background(), validContactRequest())
	assert.ErrorIs(t, err, apperrors.ErrPracticeNotFound)
}

func TestContactList(t *testing.T) {
	contactRepo := &mockContactRepo{
		inbox:      []dto.ContactListItem{{Contact: models.Contact{ID: "c1"}, PracticeTitle: "分数の導入"}},
		inboxTotal: 1,
	}
	svc := newContactServiceForTest(&mockPracticeRepo{}, contactRepo, newMockNotifier())

	items, total, err := svc.List(context.Background(), "e1", models.ContactStatusNew, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, models.ContactStatusNew, contactRepo.lastStatus)
}

func TestContactGetRequiresOwnership(t *testing.T) {
	contactRepo := &mockContactRepo{contacts: map[string]*models.Contact{
		"c1": {ID: "c1", PracticeID: "p1", Practice: &models.Practice{ID: "p1", EducatorID: "e1"}},
	}}
	svc := newContactServiceForTest(&mockPracticeRepo{}, contactRepo, newMockNotifier())

	contact, err := svc.Get(context.Background(), "c1", "e1")
	require.NoError(t, err)
	assert.Equal(t, "c1", contact.ID)

	_, err = svc.Get(context.Background(), "c1", "e2")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestContactUpdateStatus(t *testing.T) {
	contactRepo := &mockContactRepo{
		contacts: map[string]*models.Contact{
			"c1": {ID: "c1", PracticeID: "p1", Practice: &models.Practice{ID: "p1", EducatorID: "e1"}},
		},
		updateResult: &models.Contact{ID: "c1", Status: models.ContactStatusReplied},
	}
	svc := newContactServiceForTest(&mockPracticeRepo{}, contactRepo, newMockNotifier())

	contact, err := svc.UpdateStatus(context.Background(), "c1", "e1", models.ContactStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusReplied, contact.Status)
}

func TestContactUpdateStatusInvalid(t *testing.T) {
	svc := newContactServiceForTest(&mockPracticeRepo{}, &mockContactRepo{}, newMockNotifier())

	_, err := svc.UpdateStatus(context.Background(), "c1", "e1", "archived")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestContactUpdateStatusWrongOwner(t *testing.T) {
	contactRepo := &mockContactRepo{contacts: map[string]*models.Contact{
		"c1": {ID: "c1", PracticeID: "p1", Practice: &models.Practice{ID: "p1", EducatorID: "e1"}},
	}}
	svc := newContactServiceForTest(&mockPracticeRepo{}, contactRepo, newMockNotifier())

	_, err := svc.UpdateStatus(context.Background(), "c1", "e2", models.ContactStatusClosed)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
