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
	"github.com/harutok/practiceshare/internal/pkg/helpers"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// ContactRepository handles parent inquiry database operations
type ContactRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new contact with status "new"
func (r *ContactRepository) Create(ctx context.Context, c *models.Contact) error {
	now := time.Now()
	c.ID = uuid.New().String()
	c.Status = models.ContactStatusNew
	c.CreatedAt = now
	c.UpdatedAt = now

	querySql, args, err := r.sb.Insert("contacts").
		Columns("id", "practice_id", "parent_name", "parent_email", "child_age", "message", "status", "created_at", "updated_at").
		Values(c.ID, c.PracticeID, c.ParentName, c.ParentEmail, c.ChildAge, c.Message, c.Status, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert contact query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting contact")
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return nil
}

// GetByID retrieves a contact together with its practice's ownership columns
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	querySql, args, err := r.sb.Select(
		"c.id", "c.practice_id", "c.parent_name", "c.parent_email", "c.child_age",
		"c.message", "c.status", "c.created_at", "c.updated_at",
		"p.educator_id", "p.title", "p.is_published",
	).
		From("contacts c").
		Join("practices p ON c.practice_id = p.id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get contact query: %w", err)
	}

	var c models.Contact
	var practice models.Practice

	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&c.ID, &c.PracticeID, &c.ParentName, &c.ParentEmail, &c.ChildAge,
		&c.Message, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		&practice.EducatorID, &practice.Title, &practice.IsPublished,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	practice.ID = c.PracticeID
	c.Practice = &practice

	return &c, nil
}

// GetByEducator retrieves a page of inquiries addressed to an educator's
// practices, optionally filtered by status, newest first.
func (r *ContactRepository) GetByEducator(ctx context.Context, educatorID string, status models.ContactStatus, page, limit int) ([]dto.ContactListItem, int, error) {
	cond := squirrel.And{squirrel.Eq{"p.educator_id": educatorID}}
	if status != "" {
		cond = append(cond, squirrel.Eq{"c.status": status})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("contacts c").
		Join("practices p ON c.practice_id = p.id").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count contacts query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	if total == 0 {
		return []dto.ContactListItem{}, 0, nil
	}

	querySql, args, err := r.sb.Select(
		"c.id", "c.practice_id", "c.parent_name", "c.parent_email", "c.child_age",
		"c.message", "c.status", "c.created_at", "c.updated_at", "p.title",
	).
		From("contacts c").
		Join("practices p ON c.practice_id = p.id").
		Where(cond).
		OrderBy("c.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(helpers.Offset(page, limit))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get contacts query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	items := []dto.ContactListItem{}
	for rows.Next() {
		var item dto.ContactListItem
		err := rows.Scan(
			&item.ID, &item.PracticeID, &item.ParentName, &item.ParentEmail, &item.ChildAge,
			&item.Message, &item.Status, &item.CreatedAt, &item.UpdatedAt, &item.PracticeTitle,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read contact rows: %w", err)
	}

	return items, total, nil
}

// UpdateStatus moves a contact to a new lifecycle state and returns the row
func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	querySql, args, err := r.sb.Update("contacts").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, practice_id, parent_name, parent_email, child_age, message, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update contact status query: %w", err)
	}

	var c models.Contact
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&c.ID, &c.PracticeID, &c.ParentName, &c.ParentEmail, &c.ChildAge,
		&c.Message, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}

	return &c, nil
}
