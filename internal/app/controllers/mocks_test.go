package controllers

import (
	"context"
	"mime/multipart"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
)

// Hand-rolled mocks for the service interfaces the controllers consume.

type authServiceMock struct {
	registerResp *dto.AuthResponse
	registerErr  error
	loginResp    *dto.AuthResponse
	loginErr     error
	profileResp  *dto.ProfileResponse
	profileErr   error
	updateResp   *dto.EducatorResponse
	updateErr    error
}

func (m *authServiceMock) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return m.registerResp, m.registerErr
}

func (m *authServiceMock) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *authServiceMock) GetProfile(ctx context.Context, educatorID string) (*dto.ProfileResponse, error) {
	return m.profileResp, m.profileErr
}

func (m *authServiceMock) UpdateProfile(ctx context.Context, educatorID string, req *dto.UpdateProfileRequest) (*dto.EducatorResponse, error) {
	return m.updateResp, m.updateErr
}

type practiceServiceMock struct {
	listResp   []dto.PracticeListItem
	listTotal  int
	listErr    error
	lastFilter *dto.PracticeFilter
	detailResp *dto.PracticeDetailResponse
	detailErr  error
	lastViewer string
	createResp *models.Practice
	createErr  error
	updateResp *models.Practice
	updateErr  error
	deleteErr  error
}

func (m *practiceServiceMock) List(ctx context.Context, filter *dto.PracticeFilter, page, limit int) ([]dto.PracticeListItem, int, error) {
	m.lastFilter = filter
	return m.listResp, m.listTotal, m.listErr
}

func (m *practiceServiceMock) GetDetail(ctx context.Context, id, viewerID string) (*dto.PracticeDetailResponse, error) {
	m.lastViewer = viewerID
	return m.detailResp, m.detailErr
}

func (m *practiceServiceMock) Create(ctx context.Context, educatorID string, req *dto.CreatePracticeRequest) (*models.Practice, error) {
	return m.createResp, m.createErr
}

func (m *practiceServiceMock) Update(ctx context.Context, id, educatorID string, req *dto.UpdatePracticeRequest) (*models.Practice, error) {
	return m.updateResp, m.updateErr
}

func (m *practiceServiceMock) Delete(ctx context.Context, id, educatorID string) error {
	return m.deleteErr
}

type ratingServiceMock struct {
	rateResp   *models.Rating
	rateErr    error
	lastIP     string
	statsResp  *models.RatingStats
	statsErr   error
	userRating *int
	userErr    error
}

func (m *ratingServiceMock) Rate(ctx context.Context, req *dto.CreateRatingRequest, clientIP string) (*models.Rating, error) {
	m.lastIP = clientIP
	return m.rateResp, m.rateErr
}

func (m *ratingServiceMock) Stats(ctx context.Context, practiceID string) (*models.RatingStats, error) {
	return m.statsResp, m.statsErr
}

func (m *ratingServiceMock) UserRating(ctx context.Context, practiceID, sessionID, clientIP string) (*int, error) {
	return m.userRating, m.userErr
}

type contactServiceMock struct {
	createResp *dto.ContactCreatedResponse
	createErr  error
	listResp   []dto.ContactListItem
	listTotal  int
	listErr    error
	lastStatus models.ContactStatus
	getResp    *models.Contact
	getErr     error
	updateResp *models.Contact
	updateErr  error
}

func (m *contactServiceMock) Create(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactCreatedResponse, error) {
	return m.createResp, m.createErr
}

func (m *contactServiceMock) List(ctx context.Context, educatorID string, status models.ContactStatus, page, limit int) ([]dto.ContactListItem, int, error) {
	m.lastStatus = status
	return m.listResp, m.listTotal, m.listErr
}

func (m *contactServiceMock) Get(ctx context.Context, id, educatorID string) (*models.Contact, error) {
	return m.getResp, m.getErr
}

func (m *contactServiceMock) UpdateStatus(ctx context.Context, id, educatorID string, status models.ContactStatus) (*models.Contact, error) {
	m.lastStatus = status
	return m.updateResp, m.updateErr
}

type commentServiceMock struct {
	createResp *models.Comment
	createErr  error
	listResp   []models.Comment
	listTotal  int
	listErr    error
	deleteErr  error
}

func (m *commentServiceMock) Create(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error) {
	return m.createResp, m.createErr
}

func (m *commentServiceMock) ListByPractice(ctx context.Context, practiceID string, page, limit int) ([]models.Comment, int, error) {
	return m.listResp, m.listTotal, m.listErr
}

func (m *commentServiceMock) Delete(ctx context.Context, id, educatorID string) error {
	return m.deleteErr
}

type mediaServiceMock struct {
	uploadResp *models.Media
	uploadErr  error
	deleteErr  error
	listResp   []models.Media
	listErr    error
}

func (m *mediaServiceMock) Upload(ctx context.Context, fileHeader *multipart.FileHeader, practiceID *string) (*models.Media, error) {
	return m.uploadResp, m.uploadErr
}

func (m *mediaServiceMock) Delete(ctx context.Context, id, educatorID string) error {
	return m.deleteErr
}

func (m *mediaServiceMock) ListByPractice(ctx context.Context, practiceID string) ([]models.Media, error) {
	return m.listResp, m.listErr
}
