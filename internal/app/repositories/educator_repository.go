package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/dberrors"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// EducatorRepository handles educator database operations
type EducatorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEducatorRepository creates a new EducatorRepository
func NewEducatorRepository(db *pgxpool.Pool) *EducatorRepository {
	return &EducatorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const educatorColumns = "id, email, password_hash, name, bio, specialties, contact_enabled, created_at, updated_at"

func scanEducator(row pgx.Row) (*models.Educator, error) {
	var e models.Educator
	err := row.Scan(
		&e.ID, &e.Email, &e.PasswordHash, &e.Name, &e.Bio,
		&e.Specialties, &e.ContactEnabled, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new educator. A duplicate email maps to ErrEmailAlreadyExists.
func (r *EducatorRepository) Create(ctx context.Context, e *models.Educator) error {
	now := time.Now()
	e.ID = uuid.New().String()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Specialties == nil {
		e.Specialties = []string{}
	}

	sql, args, err := r.sb.Insert("educators").
		Columns("id", "email", "password_hash", "name", "bio", "specialties", "contact_enabled", "created_at", "updated_at").
		Values(e.ID, e.Email, e.PasswordHash, e.Name, e.Bio, e.Specialties, e.ContactEnabled, e.CreatedAt, e.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert educator query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting educator")
		return fmt.Errorf("failed to insert educator: %w", err)
	}

	return nil
}

// GetByID retrieves an educator by id
func (r *EducatorRepository) GetByID(ctx context.Context, id string) (*models.Educator, error) {
	sql, args, err := r.sb.Select(educatorColumns).
		From("educators").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get educator query: %w", err)
	}

	educator, err := scanEducator(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEducatorNotFound
		}
		return nil, fmt.Errorf("failed to get educator: %w", err)
	}

	return educator, nil
}

// GetByEmail retrieves an educator by email
func (r *EducatorRepository) GetByEmail(ctx context.Context, email string) (*models.Educator, error) {
	sql, args, err := r.sb.Select(educatorColumns).
		From("educators").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get educator by email query: %w", err)
	}

	educator, err := scanEducator(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEducatorNotFound
		}
		return nil, fmt.Errorf("failed to get educator by email: %w", err)
	}

	return educator, nil
}

// UpdateProfile applies a partial profile update and returns the fresh row
func (r *EducatorRepository) UpdateProfile(ctx context.Context, id string, req *dto.UpdateProfileRequest) (*models.Educator, error) {
	update := r.sb.Update("educators").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + educatorColumns)

	if req.Name != nil {
		update = update.Set("name", *req.Name)
	}
	if req.Bio != nil {
		update = update.Set("bio", *req.Bio)
	}
	if req.Specialties != nil {
		update = update.Set("specialties", *req.Specialties)
	}
	if req.ContactEnabled != nil {
		update = update.Set("contact_enabled", *req.ContactEnabled)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update profile query: %w", err)
	}

	educator, err := scanEducator(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEducatorNotFound
		}
		return nil, fmt.Errorf("failed to update educator profile: %w", err)
	}

	return educator, nil
}

// CountPractices counts the practices owned by an educator
func (r *EducatorRepository) CountPractices(ctx context.Context, educatorID string) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("practices").
		Where(squirrel.Eq{"educator_id": educatorID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count practices query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count practices: %w", err)
	}

	return count, nil
}
