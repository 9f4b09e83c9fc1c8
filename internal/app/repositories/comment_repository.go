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
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/helpers"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// CommentRepository handles comment database operations
type CommentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new comment
func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now()

	querySql, args, err := r.sb.Insert("comments").
		Columns("id", "practice_id", "author_name", "content", "created_at").
		Values(c.ID, c.PracticeID, c.AuthorName, c.Content, c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert comment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting comment")
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by id
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	querySql, args, err := r.sb.Select("id", "practice_id", "author_name", "content", "created_at").
		From("comments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get comment query: %w", err)
	}

	var c models.Comment
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&c.ID, &c.PracticeID, &c.AuthorName, &c.Content, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &c, nil
}

// GetByPractice retrieves a page of comments for a practice, newest first
func (r *CommentRepository) GetByPractice(ctx context.Context, practiceID string, page, limit int) ([]models.Comment, int, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("comments").
		Where(squirrel.Eq{"practice_id": practiceID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count comments query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	if total == 0 {
		return []models.Comment{}, 0, nil
	}

	querySql, args, err := r.sb.Select("id", "practice_id", "author_name", "content", "created_at").
		From("comments").
		Where(squirrel.Eq{"practice_id": practiceID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(helpers.Offset(page, limit))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PracticeID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read comment rows: %w", err)
	}

	return comments, total, nil
}

// GetRecentByPractice retrieves the newest comments of a practice, capped at limit
func (r *CommentRepository) GetRecentByPractice(ctx context.Context, practiceID string, limit int) ([]models.Comment, error) {
	querySql, args, err := r.sb.Select("id", "practice_id", "author_name", "content", "created_at").
		From("comments").
		Where(squirrel.Eq{"practice_id": practiceID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PracticeID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comment rows: %w", err)
	}

	return comments, nil
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	querySql, args, err := r.sb.Delete("comments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete comment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}

	return nil
}
