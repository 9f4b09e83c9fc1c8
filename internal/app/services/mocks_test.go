package services

import (
	"context"
	"mime/multipart"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/filestorage"
)

// Hand-rolled mocks for the repository interfaces the services consume.

type mockEducatorRepo struct {
	educators    map[string]*models.Educator
	createErr    error
	created      *models.Educator
	updateResult *models.Educator
	updateErr    error
	practices    int
	countErr     error
}

func (m *mockEducatorRepo) Create(ctx context.Context, e *models.Educator) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = "educator-new"
	m.created = e
	return nil
}

func (m *mockEducatorRepo) GetByID(ctx context.Context, id string) (*models.Educator, error) {
	if e, ok := m.educators[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrEducatorNotFound
}

func (m *mockEducatorRepo) GetByEmail(ctx context.Context, email string) (*models.Educator, error) {
	for _, e := range m.educators {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, apperrors.ErrEducatorNotFound
}

func (m *mockEducatorRepo) UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*models.Educator, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.updateResult, nil
}

func (m *mockEducatorRepo) CountPractices(ctx context.Context, educatorID string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.practices, nil
}

type mockTokenGen struct {
	token string
	err   error
}

func (m *mockTokenGen) GenerateToken(educatorID, email string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

type mockPracticeRepo struct {
	practices  map[string]*models.Practice
	listItems  []dto.PracticeListItem
	listTotal  int
	listErr    error
	lastFilter *dto.PracticeFilter
	createErr  error
	created    *models.Practice
	updated    *models.Practice
	updateErr  error
	deleteErr  error
	deletedID  string
}

func (m *mockPracticeRepo) GetAll(ctx context.Context, filter *dto.PracticeFilter, page, limit int) ([]dto.PracticeListItem, int, error) {
	m.lastFilter = filter
	return m.listItems, m.listTotal, m.listErr
}

func (m *mockPracticeRepo) GetByID(ctx context.Context, id string) (*models.Practice, error) {
	if p, ok := m.practices[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrPracticeNotFound
}

func (m *mockPracticeRepo) GetOwnerInfo(ctx context.Context, id string) (*models.Practice, error) {
	return m.GetByID(ctx, id)
}

func (m *mockPracticeRepo) Create(ctx context.Context, p *models.Practice) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = "practice-new"
	m.created = p
	if m.practices == nil {
		m.practices = make(map[string]*models.Practice)
	}
	m.practices[p.ID] = p
	return nil
}

func (m *mockPracticeRepo) Update(ctx context.Context, id string, req *dto.UpdatePracticeRequest) (*models.Practice, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.updated, nil
}

func (m *mockPracticeRepo) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

type mockCommentRepo struct {
	comments  map[string]*models.Comment
	page      []models.Comment
	pageTotal int
	recent    []models.Comment
	createErr error
	created   *models.Comment
	deleteErr error
	deletedID string
}

func (m *mockCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = "comment-new"
	m.created = c
	return nil
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if c, ok := m.comments[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCommentNotFound
}

func (m *mockCommentRepo) GetByPractice(ctx context.Context, practiceID string, page, limit int) ([]models.Comment, int, error) {
	return m.page, m.pageTotal, nil
}

func (m *mockCommentRepo) GetRecentByPractice(ctx context.Context, practiceID string, limit int) ([]models.Comment, error) {
	return m.recent, nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

type mockRatingRepo struct {
	upsertErr error
	upserted  *models.Rating
	bySession *models.Rating
	stats     *models.RatingStats
	average   float64
	count     int
}

func (m *mockRatingRepo) Upsert(ctx context.Context, rating *models.Rating) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	rating.ID = "rating-new"
	m.upserted = rating
	return nil
}

func (m *mockRatingRepo) GetBySession(ctx context.Context, practiceID, sessionID string) (*models.Rating, error) {
	return m.bySession, nil
}

func (m *mockRatingRepo) GetStats(ctx context.Context, practiceID string) (*models.RatingStats, error) {
	return m.stats, nil
}

func (m *mockRatingRepo) GetAverageAndCount(ctx context.Context, practiceID string) (float64, int, error) {
	return m.average, m.count, nil
}

type mockContactRepo struct {
	contacts     map[string]*models.Contact
	createErr    error
	created      *models.Contact
	inbox        []dto.ContactListItem
	inboxTotal   int
	lastStatus   models.ContactStatus
	updateResult *models.Contact
	updateErr    error
}

func (m *mockContactRepo) Create(ctx context.Context, c *models.Contact) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = "contact-new"
	c.Status = models.ContactStatusNew
	m.created = c
	return nil
}

func (m *mockContactRepo) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	if c, ok := m.contacts[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrContactNotFound
}

func (m *mockContactRepo) GetByEducator(ctx context.Context, educatorID string, status models.ContactStatus, page, limit int) ([]dto.ContactListItem, int, error) {
	m.lastStatus = status
	return m.inbox, m.inboxTotal, nil
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.lastStatus = status
	return m.updateResult, nil
}

type mockMediaRepo struct {
	media      map[string]*models.Media
	owners     map[string]*string
	createErr  error
	created    *models.Media
	byPractice []models.Media
	deleteErr  error
	deletedID  string
	exists     bool
	existsErr  error
}

func (m *mockMediaRepo) Create(ctx context.Context, media *models.Media) error {
	if m.createErr != nil {
		return m.createErr
	}
	media.ID = "media-new"
	m.created = media
	return nil
}

func (m *mockMediaRepo) GetByID(ctx context.Context, id string) (*models.Media, *string, error) {
	media, ok := m.media[id]
	if !ok {
		return nil, nil, apperrors.ErrMediaNotFound
	}
	return media, m.owners[id], nil
}

func (m *mockMediaRepo) GetByPractice(ctx context.Context, practiceID string) ([]models.Media, error) {
	return m.byPractice, nil
}

func (m *mockMediaRepo) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

func (m *mockMediaRepo) PracticeExists(ctx context.Context, practiceID string) (bool, error) {
	return m.exists, m.existsErr
}

type mockStorage struct {
	validateErr error
	saveErr     error
	saved       *filestorage.StoredFile
	deleted     []string
	deleteErr   error
}

func (m *mockStorage) Validate(fileHeader *multipart.FileHeader) error {
	return m.validateErr
}

func (m *mockStorage) Save(fileHeader *multipart.FileHeader) (*filestorage.StoredFile, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	return m.saved, nil
}

func (m *mockStorage) Delete(filename string) error {
	m.deleted = append(m.deleted, filename)
	return m.deleteErr
}

type mockNotifier struct {
	calls chan string
	err   error
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{calls: make(chan string, 1)}
}

func (m *mockNotifier) SendNewContactNotification(toEmail, educatorName, practiceTitle, parentName, message string) error {
	m.calls <- toEmail
	return m.err
}
