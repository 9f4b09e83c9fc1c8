package repositories

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harutok/practiceshare/internal/app/models"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// RatingRepository handles rating database operations
type RatingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert inserts a rating or, when the (practice, session) pair already
// rated, updates the existing row. Single atomic statement; concurrent
// submissions for the same pair cannot produce duplicates.
func (r *RatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	now := time.Now()
	rating.ID = uuid.New().String()
	rating.CreatedAt = now
	rating.UpdatedAt = now

	query := `
		INSERT INTO ratings (id, practice_id, session_id, score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT uq_ratings_practice_session
		DO UPDATE SET score = EXCLUDED.score, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		rating.ID, rating.PracticeID, rating.SessionID, rating.Score, now, now,
	).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error upserting rating")
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	return nil
}

// GetBySession retrieves a session's rating for a practice, nil when absent
func (r *RatingRepository) GetBySession(ctx context.Context, practiceID, sessionID string) (*models.Rating, error) {
	querySql, args, err := r.sb.Select("id", "practice_id", "session_id", "score", "created_at", "updated_at").
		From("ratings").
		Where(squirrel.Eq{"practice_id": practiceID, "session_id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get rating query: %w", err)
	}

	var rating models.Rating
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&rating.ID, &rating.PracticeID, &rating.SessionID,
		&rating.Score, &rating.CreatedAt, &rating.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return &rating, nil
}

// GetStats aggregates the ratings of a practice into average, total and a
// zero-filled 1..5 distribution. The average is rounded to one decimal.
func (r *RatingRepository) GetStats(ctx context.Context, practiceID string) (*models.RatingStats, error) {
	querySql, args, err := r.sb.Select("score", "COUNT(*)").
		From("ratings").
		Where(squirrel.Eq{"practice_id": practiceID}).
		GroupBy("score").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build rating stats query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rating stats: %w", err)
	}
	defer rows.Close()

	stats := &models.RatingStats{
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	sum := 0

	for rows.Next() {
		var score, count int
		if err := rows.Scan(&score, &count); err != nil {
			return nil, fmt.Errorf("failed to scan rating stats row: %w", err)
		}
		stats.Distribution[score] = count
		stats.Total += count
		sum += score * count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rating stats rows: %w", err)
	}

	if stats.Total > 0 {
		stats.Average = math.Round(float64(sum)/float64(stats.Total)*10) / 10
	}

	return stats, nil
}

// GetAverageAndCount returns the rounded average score and the rating count
// of a practice.
func (r *RatingRepository) GetAverageAndCount(ctx context.Context, practiceID string) (float64, int, error) {
	querySql, args, err := r.sb.Select("COALESCE(AVG(score), 0)", "COUNT(*)").
		From("ratings").
		Where(squirrel.Eq{"practice_id": practiceID}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build rating average query: %w", err)
	}

	var average float64
	var count int
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&average, &count); err != nil {
		return 0, 0, fmt.Errorf("failed to get rating average: %w", err)
	}

	return math.Round(average*10) / 10, count, nil
}
