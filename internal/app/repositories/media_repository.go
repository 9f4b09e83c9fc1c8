package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/helpers"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// MediaRepository handles uploaded file metadata database operations
type MediaRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository(db *pgxpool.Pool) *MediaRepository {
	return &MediaRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a metadata row for a stored file
func (r *MediaRepository) Create(ctx context.Context, m *models.Media) error {
	m.ID = uuid.New().String()
	m.CreatedAt = time.Now()

	querySql, args, err := r.sb.Insert("media").
		Columns("id", "practice_id", "filename", "original_name", "mime_type", "size", "url", "created_at").
		Values(m.ID, helpers.GetNullString(m.PracticeID), m.Filename, m.OriginalName, m.MimeType, m.Size, m.URL, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert media query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting media")
		return fmt.Errorf("failed to insert media: %w", err)
	}

	return nil
}

// GetByID retrieves a media row; when linked to a practice, the practice's
// educator id comes along for ownership checks.
func (r *MediaRepository) GetByID(ctx context.Context, id string) (*models.Media, *string, error) {
	querySql, args, err := r.sb.Select(
		"m.id", "m.practice_id", "m.filename", "m.original_name", "m.mime_type",
		"m.size", "m.url", "m.created_at", "p.educator_id",
	).
		From("media m").
		LeftJoin("practices p ON m.practice_id = p.id").
		Where(squirrel.Eq{"m.id": id}).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build get media query: %w", err)
	}

	var m models.Media
	var practiceID, educatorID sql.NullString

	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&m.ID, &practiceID, &m.Filename, &m.OriginalName, &m.MimeType,
		&m.Size, &m.URL, &m.CreatedAt, &educatorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrMediaNotFound
		}
		return nil, nil, fmt.Errorf("failed to get media: %w", err)
	}

	m.PracticeID = helpers.StringPtrFromNull(practiceID)
	return &m, helpers.StringPtrFromNull(educatorID), nil
}

// GetByPractice retrieves all media rows of a practice, newest first
func (r *MediaRepository) GetByPractice(ctx context.Context, practiceID string) ([]models.Media, error) {
	querySql, args, err := r.sb.Select("id", "practice_id", "filename", "original_name", "mime_type", "size", "url", "created_at").
		From("media").
		Where(squirrel.Eq{"practice_id": practiceID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get practice media query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query practice media: %w", err)
	}
	defer rows.Close()

	media := []models.Media{}
	for rows.Next() {
		var m models.Media
		var pid sql.NullString
		if err := rows.Scan(&m.ID, &pid, &m.Filename, &m.OriginalName, &m.MimeType, &m.Size, &m.URL, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan media row: %w", err)
		}
		m.PracticeID = helpers.StringPtrFromNull(pid)
		media = append(media, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read media rows: %w", err)
	}

	return media, nil
}

// Delete removes a media metadata row
func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	querySql, args, err := r.sb.Delete("media").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete media query: %w", err)
	}

	tag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMediaNotFound
	}

	return nil
}

// PracticeExists reports whether a practice row exists
func (r *MediaRepository) PracticeExists(ctx context.Context, practiceID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM practices WHERE id = $1)`, practiceID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check practice existence: %w", err)
	}
	return exists, nil
}
