package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/auth"
)

func testJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "practiceshare.test",
	})
}

func authTestRouter(m *AuthMiddleware, optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	guard := m.JWTAuth()
	if optional {
		guard = m.OptionalJWTAuth()
	}

	router.GET("/protected", guard, func(c *gin.Context) {
		id, _ := GetEducatorID(c)
		c.JSON(http.StatusOK, gin.H{"educatorId": id})
	})
	return router
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	router := authTestRouter(NewAuthMiddleware(jwtService), false)

	token, err := jwtService.GenerateToken("educator-1", "teacher@example.jp")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "educator-1", body["educatorId"])
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := authTestRouter(NewAuthMiddleware(testJWTService(time.Hour)), false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Authentication required", body.Message)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router := authTestRouter(NewAuthMiddleware(testJWTService(time.Hour)), false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid token", body.Message)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := testJWTService(-time.Minute)
	router := authTestRouter(NewAuthMiddleware(jwtService), false)

	token, err := jwtService.GenerateToken("educator-1", "teacher@example.jp")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Token expired", body.Message)
}

func TestOptionalJWTAuthAnonymous(t *testing.T) {
	router := authTestRouter(NewAuthMiddleware(testJWTService(time.Hour)), true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body["educatorId"])
}

func TestOptionalJWTAuthBadTokenStillPasses(t *testing.T) {
	router := authTestRouter(NewAuthMiddleware(testJWTService(time.Hour)), true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer broken")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body["educatorId"])
}

func TestOptionalJWTAuthValidToken(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	router := authTestRouter(NewAuthMiddleware(jwtService), true)

	token, err := jwtService.GenerateToken("educator-7", "teacher@example.jp")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "educator-7", body["educatorId"])
}
