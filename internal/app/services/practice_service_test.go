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

func newPracticeFixture(id, educatorID string, published bool) *models.Practice {
	return &models.Practice{
		ID:                 id,
		EducatorID:         educatorID,
		Title:              "分数の導入",
		Description:        "ピザを使った分数の導入授業",
		Subject:            "算数",
		GradeLevel:         models.GradeElementary3,
		LearningLevel:      models.LearningStandard,
		ImplementationDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		IsPublished:        published,
	}
}

func newPracticeServiceForTest(practiceRepo *mockPracticeRepo, commentRepo *mockCommentRepo, ratingRepo *mockRatingRepo, mediaRepo *mockMediaRepo) PracticeService {
	if commentRepo == nil {
		commentRepo = &mockCommentRepo{}
	}
	if ratingRepo == nil {
		ratingRepo = &mockRatingRepo{}
	}
	if mediaRepo == nil {
		mediaRepo = &mockMediaRepo{}
	}
	return NewPracticeService(practiceRepo, commentRepo, ratingRepo, mediaRepo, auth.NewAuthorizationService(practiceRepo))
}

func TestPracticeList(t *testing.T) {
	published := true
	repo := &mockPracticeRepo{
		listItems: []dto.PracticeListItem{{Practice: *newPracticeFixture("p1", "e1", true), CommentsCount: 2, RatingsCount: 5}},
		listTotal: 1,
	}
	svc := newPracticeServiceForTest(repo, nil, nil, nil)

	items, total, err := svc.List(context.Background(), &dto.PracticeFilter{IsPublished: &published}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].CommentsCount)
	require.NotNil(t, repo.lastFilter.IsPublished)
	assert.True(t, *repo.lastFilter.IsPublished)
}

func TestPracticeGetDetailPublished(t *testing.T) {
	repo := &mockPracticeRepo{practices: map[string]*models.Practice{
		"p1": newPracticeFixture("p1", "e1", true),
	}}
	ratingRepo := &mockRatingRepo{average: 4.2, count: 17}
	commentRepo := &mockCommentRepo{recent: []models.Comment{{ID: "c1", PracticeID: "p1", AuthorName: "保護者A", Content: "参考になりました"}}}
	mediaRepo := &mockMediaRepo{byPractice: []models.Media{{ID: "m1", Filename: "photo.png"}}}
	svc := newPracticeServiceForTest(repo, commentRepo, ratingRepo, mediaRepo)

	detail, err := svc.GetDetail(context.Background(), "p1", "")
	require.NoError(t, err)
	assert.Equal(t, 4.2, detail.AverageRating)
	assert.Equal(t, 17, detail.RatingsCount)
	require.Len(t, detail.Comments, 1)
	require.Len(t, detail.Media, 1)
}

func TestPracticeGetDetailDraftHiddenFromStrangers(t *testing.T) {
	repo := &mockPracticeRepo{practices: map[string]*models.Practice{
		"p1": newPracticeFixture("p1", "e1", false),
	}}
	svc := newPracticeServiceForTest(repo, nil, nil, nil)

	// Anonymous viewer
	_, err := svc.GetDetail(context.Background(), "p1", "")
	assert.ErrorIs(t, err, apperrors.ErrPracticeNotFound)

	// Authenticated non-owner gets the same NotFound, not Forbidden
	_, err = svc.GetDetail(context.Background(), "p1", "e2")
	assert.ErrorIs(t, err, apperrors.ErrPracticeNotFound)
}

func TestPracticeGetDetailDraftVisibleToOwner(t *testing.T) {
	repo := &mockPracticeRepo{practices: map[string]*models.Practice{
		"p1": newPracticeFixture("p1", "e1", false),
	}}
	svc := newPracticeServiceForTest(repo, nil, nil, nil)

	detail, err := svc.GetDetail(context.Background(), "p1", "e1")
	require.NoError(t, err)
	assert.False(t, detail.IsPublished)
}

func TestPracticeCreate(t *testing.T) {
	repo := &mockPracticeRepo{}
	svc := newPracticeServiceForTest(repo, nil, nil, nil)

	created, err := svc.Create(context.Background(), "e1", &dto.CreatePracticeRequest{
		Title:              "分数の導入",
		Description:        "ピザを使った分数の導入授業",
		Subject:            "算数",
		GradeLevel:         models.GradeElementary3,
		LearningLevel:      models.LearningStandard,
		ImplementationDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		IsPublished:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, "practice-new", created.ID)
	assert.Equal(t, "e1", repo.created.EducatorID)
}

func TestPracticeCreateInvalidLevels(t *testing.T) {
	svc := newPracticeServiceForTest(&mockPracticeRepo{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), "e1", &dto.CreatePracticeRequest{
		Title: "t", Description: "d", Subject: "算数",
		GradeLevel: "高1", LearningLevel: models.LearningStandard,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(context.Background(), "e1", &dto.CreatePracticeRequest{
		Title: "t", Description: "d", Subject: "算数",
		GradeLevel: models.GradeElementary3, LearningLevel: "expert",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestPracticeUpdateRequiresOwnership(t *testing.T) {
	repo := &mockPracticeRepo{practices: map[string]*models.Practice{
		"p1": newPracticeFixture("p1", "e1", true),
	}}
	svc := newPracticeServiceForTest(repo, nil, nil, nil)

	title := "updated"
	_, err := svc.Update(context.Background(), "p1", "e2", &dto.UpdatePracticeRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestPracticeUpdateUnknownPractice(t *testing.T) {
	svc := newPracticeServiceForTest(&mockPracticeRepo{}, nil, nil, nil)

	title := "updated"
	_, err := svc.Update(context.Background(), "ghost", "e1", &dto.UpdatePracticeRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrPracticeNotFound)
}

func TestPracticeDelete(t *testing.T) {
	repo := &mockPracticeRepo{practices: map[string]*models.Practice{
		"p1": newPracticeFixture("p1", "e1", true),
	}}
	svc := newPracticeServiceForTest(repo, nil, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "p1", "e1"))
	assert.Equal(t, "p1", repo.deletedID)

	assert.ErrorIs(t, svc.Delete(context.Background(), "p1", "e2"), apperrors.ErrPermissionDenied)
}
