package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	pkgauth "github.com/harutok/practiceshare/internal/pkg/auth"
)

func TestRegister(t *testing.T) {
	repo := &mockEducatorRepo{}
	svc := NewAuthService(repo, &mockTokenGen{token: "signed-token"})

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:       "teacher@example.jp",
		Password:    "password123",
		Name:        "Tanaka Yuki",
		Bio:         "Elementary school teacher",
		Specialties: []string{"算数"},
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "teacher@example.jp", resp.Educator.Email)
	assert.True(t, resp.Educator.ContactEnabled, "contact should be enabled by default")

	require.NotNil(t, repo.created)
	assert.NotEqual(t, "password123", repo.created.PasswordHash)
	assert.True(t, pkgauth.CheckPassword(repo.created.PasswordHash, "password123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &mockEducatorRepo{createErr: apperrors.ErrEmailAlreadyExists}
	svc := NewAuthService(repo, &mockTokenGen{token: "signed-token"})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "taken@example.jp",
		Password: "password123",
		Name:     "Tanaka Yuki",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	hash, err := pkgauth.HashPassword("password123")
	require.NoError(t, err)

	repo := &mockEducatorRepo{educators: map[string]*models.Educator{
		"educator-1": {ID: "educator-1", Email: "teacher@example.jp", PasswordHash: hash, Name: "Tanaka Yuki"},
	}}
	svc := NewAuthService(repo, &mockTokenGen{token: "signed-token"})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "teacher@example.jp", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "educator-1", resp.Educator.ID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockEducatorRepo{}, &mockTokenGen{token: "signed-token"})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.jp", Password: "password123"})
	// Same error as a wrong password so the response does not reveal
	// whether the account exists.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := pkgauth.HashPassword("password123")
	require.NoError(t, err)

	repo := &mockEducatorRepo{educators: map[string]*models.Educator{
		"educator-1": {ID: "educator-1", Email: "teacher@example.jp", PasswordHash: hash},
	}}
	svc := NewAuthService(repo, &mockTokenGen{token: "signed-token"})

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "teacher@example.jp", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	repo := &mockEducatorRepo{
		educators: map[string]*models.Educator{
			"educator-1": {ID: "educator-1", Email: "teacher@example.jp", Name: "Tanaka Yuki"},
		},
		practices: 4,
	}
	svc := NewAuthService(repo, &mockTokenGen{})

	profile, err := svc.GetProfile(context.Background(), "educator-1")
	require.NoError(t, err)
	assert.Equal(t, "educator-1", profile.ID)
	assert.Equal(t, 4, profile.PracticesCount)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewAuthService(&mockEducatorRepo{}, &mockTokenGen{})

	_, err := svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrEducatorNotFound)
}

func TestUpdateProfile(t *testing.T) {
	name := "New Name"
	repo := &mockEducatorRepo{updateResult: &models.Educator{ID: "educator-1", Name: name, Specialties: []string{"理科"}}}
	svc := NewAuthService(repo, &mockTokenGen{})

	resp, err := svc.UpdateProfile(context.Background(), "educator-1", &dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", resp.Name)
}
