package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/auth"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, educatorID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, educatorID string, req *dto.UpdateProfileRequest) (*dto.EducatorResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	educatorRepo EducatorRepository
	tokens       TokenGenerator
}

// NewAuthService creates a new AuthService
func NewAuthService(educatorRepo EducatorRepository, tokens TokenGenerator) AuthService {
	return &authServiceImpl{
		educatorRepo: educatorRepo,
		tokens:       tokens,
	}
}

// Register creates a new educator account and signs them in
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	educator := &models.Educator{
		Email:          req.Email,
		PasswordHash:   hash,
		Name:           req.Name,
		Bio:            req.Bio,
		Specialties:    req.Specialties,
		ContactEnabled: true,
	}

	if err := s.educatorRepo.Create(ctx, educator); err != nil {
		// Duplicate email surfaces as a conflict; everything else is internal.
		return nil, err
	}

	token, err := s.tokens.GenerateToken(educator.ID, educator.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Error generating token after registration")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthResponse{
		Educator: dto.NewEducatorResponse(educator),
		Token:    token,
	}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error so the response does not reveal which
// part failed.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	educator, err := s.educatorRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrEducatorNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(educator.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(educator.ID, educator.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Error generating token at login")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthResponse{
		Educator: dto.NewEducatorResponse(educator),
		Token:    token,
	}, nil
}

// GetProfile returns the authenticated educator's own profile with the count
// of their practices
func (s *authServiceImpl) GetProfile(ctx context.Context, educatorID string) (*dto.ProfileResponse, error) {
	educator, err := s.educatorRepo.GetByID(ctx, educatorID)
	if err != nil {
		return nil, err
	}

	count, err := s.educatorRepo.CountPractices(ctx, educatorID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		EducatorResponse: dto.NewEducatorResponse(educator),
		PracticesCount:   count,
	}, nil
}

// UpdateProfile applies a partial profile update
func (s *authServiceImpl) UpdateProfile(ctx context.Context, educatorID string, req *dto.UpdateProfileRequest) (*dto.EducatorResponse, error) {
	educator, err := s.educatorRepo.UpdateProfile(ctx, educatorID, req)
	if err != nil {
		return nil, err
	}

	resp := dto.NewEducatorResponse(educator)
	return &resp, nil
}
