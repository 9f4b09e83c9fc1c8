package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/middleware"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
)

func getContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req
	return c, w
}

func detailFixture(published bool) *dto.PracticeDetailResponse {
	return &dto.PracticeDetailResponse{
		Practice: models.Practice{
			ID:            "p1",
			EducatorID:    "e1",
			Title:         "分数の導入",
			Subject:       "算数",
			GradeLevel:    models.GradeElementary3,
			LearningLevel: models.LearningStandard,
			IsPublished:   published,
		},
		AverageRating: 4.2,
		RatingsCount:  17,
	}
}

func TestPracticeControllerList(t *testing.T) {
	mockSvc := &practiceServiceMock{
		listResp:  []dto.PracticeListItem{{Practice: models.Practice{ID: "p1"}}},
		listTotal: 1,
	}
	controller := NewPracticeController(mockSvc)

	c, w := getContext(t, "/practices?subject=算数&specialNeeds=true")
	controller.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, publicCacheControl, w.Header().Get("Cache-Control"))

	require.NotNil(t, mockSvc.lastFilter)
	assert.Equal(t, "算数", mockSvc.lastFilter.Subject)
	require.NotNil(t, mockSvc.lastFilter.SpecialNeeds)
	assert.True(t, *mockSvc.lastFilter.SpecialNeeds)
	// The public listing always pins the published flag
	require.NotNil(t, mockSvc.lastFilter.IsPublished)
	assert.True(t, *mockSvc.lastFilter.IsPublished)

	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, 1, resp.Pagination.Total)
}

func TestPracticeControllerListInvalidPage(t *testing.T) {
	controller := NewPracticeController(&practiceServiceMock{})

	c, w := getContext(t, "/practices?page=0")
	controller.List(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).Success)
}

func TestPracticeControllerListInvalidSpecialNeeds(t *testing.T) {
	controller := NewPracticeController(&practiceServiceMock{})

	c, w := getContext(t, "/practices?specialNeeds=maybe")
	controller.List(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPracticeControllerGetPublished(t *testing.T) {
	mockSvc := &practiceServiceMock{detailResp: detailFixture(true)}
	controller := NewPracticeController(mockSvc)

	c, w := getContext(t, "/practices/p1")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	controller.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, publicCacheControl, w.Header().Get("Cache-Control"))
}

func TestPracticeControllerGetDraftNotCached(t *testing.T) {
	mockSvc := &practiceServiceMock{detailResp: detailFixture(false)}
	controller := NewPracticeController(mockSvc)

	c, w := getContext(t, "/practices/p1")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	c.Set(middleware.ContextEducatorID, "e1")
	controller.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Cache-Control"))
	assert.Equal(t, "e1", mockSvc.lastViewer)
}

func TestPracticeControllerGetNotFound(t *testing.T) {
	controller := NewPracticeController(&practiceServiceMock{detailErr: apperrors.ErrPracticeNotFound})

	c, w := getContext(t, "/practices/ghost")
	c.Params = gin.Params{{Key: "id", Value: "ghost"}}
	controller.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Practice not found", decodeEnvelope(t, w).Message)
}

func TestPracticeControllerCreate(t *testing.T) {
	mockSvc := &practiceServiceMock{createResp: &models.Practice{ID: "practice-new"}}
	controller := NewPracticeController(mockSvc)

	c, w := jsonContext(t, http.MethodPost, "/practices", map[string]interface{}{
		"title":              "分数の導入",
		"description":        "ピザを使った分数の導入授業",
		"subject":            "算数",
		"gradeLevel":         "小3",
		"learningLevel":      "standard",
		"implementationDate": time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"isPublished":        true,
	})
	c.Set(middleware.ContextEducatorID, "e1")
	controller.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestPracticeControllerCreateMissingFields(t *testing.T) {
	controller := NewPracticeController(&practiceServiceMock{})

	c, w := jsonContext(t, http.MethodPost, "/practices", map[string]interface{}{
		"title": "only a title",
	})
	c.Set(middleware.ContextEducatorID, "e1")
	controller.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Message, "Validation failed")
}

func TestPracticeControllerUpdateForbidden(t *testing.T) {
	controller := NewPracticeController(&practiceServiceMock{updateErr: apperrors.ErrPermissionDenied})

	c, w := jsonContext(t, http.MethodPut, "/practices/p1", map[string]interface{}{"title": "new title"})
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	c.Set(middleware.ContextEducatorID, "e2")
	controller.Update(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestPracticeControllerDelete(t *testing.T) {
	controller := NewPracticeController(&practiceServiceMock{})

	c, w := getContext(t, "/practices/p1")
	c.Request.Method = http.MethodDelete
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	c.Set(middleware.ContextEducatorID, "e1")
	controller.Delete(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Practice deleted", decodeEnvelope(t, w).Message)
}
