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
	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/apperrors"
	"github.com/harutok/practiceshare/internal/pkg/helpers"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// PracticeRepository handles teaching practice database operations
type PracticeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPracticeRepository creates a new PracticeRepository
func NewPracticeRepository(db *pgxpool.Pool) *PracticeRepository {
	return &PracticeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// applyFilter appends the whitelisted equality predicates of f to cond.
func applyFilter(cond squirrel.And, f *dto.PracticeFilter) squirrel.And {
	if f == nil {
		return cond
	}
	if f.IsPublished != nil {
		cond = append(cond, squirrel.Eq{"p.is_published": *f.IsPublished})
	}
	if f.Subject != "" {
		cond = append(cond, squirrel.Eq{"p.subject": f.Subject})
	}
	if f.GradeLevel != "" {
		cond = append(cond, squirrel.Eq{"p.grade_level": f.GradeLevel})
	}
	if f.LearningLevel != "" {
		cond = append(cond, squirrel.Eq{"p.learning_level": f.LearningLevel})
	}
	if f.SpecialNeeds != nil {
		cond = append(cond, squirrel.Eq{"p.special_needs": *f.SpecialNeeds})
	}
	if f.EducatorID != "" {
		cond = append(cond, squirrel.Eq{"p.educator_id": f.EducatorID})
	}
	return cond
}

// GetAll retrieves practices matching the filter, newest first, with the
// total counted under the same predicate.
func (r *PracticeRepository) GetAll(ctx context.Context, filter *dto.PracticeFilter, page, limit int) ([]dto.PracticeListItem, int, error) {
	cond := applyFilter(squirrel.And{}, filter)

	countSelect := r.sb.Select("COUNT(*)").From("practices p")
	if len(cond) > 0 {
		countSelect = countSelect.Where(cond)
	}

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count practices query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting practices")
		return nil, 0, fmt.Errorf("failed to count practices: %w", err)
	}

	if total == 0 {
		return []dto.PracticeListItem{}, 0, nil
	}

	baseSelect := r.sb.Select(
		"p.id", "p.educator_id", "p.title", "p.description", "p.subject",
		"p.grade_level", "p.learning_level", "p.special_needs", "p.special_needs_details",
		"p.implementation_date", "p.tags", "p.is_published", "p.created_at", "p.updated_at",
		"e.name AS educator_name", "e.specialties AS educator_specialties",
		"(SELECT COUNT(*) FROM comments c WHERE c.practice_id = p.id) AS comments_count",
		"(SELECT COUNT(*) FROM ratings rt WHERE rt.practice_id = p.id) AS ratings_count",
	).
		From("practices p").
		Join("educators e ON p.educator_id = e.id")
	if len(cond) > 0 {
		baseSelect = baseSelect.Where(cond)
	}

	baseSelect = baseSelect.OrderBy("p.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(helpers.Offset(page, limit)))

	querySql, queryArgs, err := baseSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get practices query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying practices")
		return nil, 0, fmt.Errorf("failed to query practices: %w", err)
	}
	defer rows.Close()

	items := []dto.PracticeListItem{}
	for rows.Next() {
		var item dto.PracticeListItem
		var details sql.NullString
		var educatorName string
		var educatorSpecialties []string

		err := rows.Scan(
			&item.ID, &item.EducatorID, &item.Title, &item.Description, &item.Subject,
			&item.GradeLevel, &item.LearningLevel, &item.SpecialNeeds, &details,
			&item.ImplementationDate, &item.Tags, &item.IsPublished, &item.CreatedAt, &item.UpdatedAt,
			&educatorName, &educatorSpecialties,
			&item.CommentsCount, &item.RatingsCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan practice row: %w", err)
		}

		item.SpecialNeedsDetails = helpers.StringPtrFromNull(details)
		item.Educator = &models.Educator{
			ID:          item.EducatorID,
			Name:        educatorName,
			Specialties: educatorSpecialties,
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read practice rows: %w", err)
	}

	return items, total, nil
}

// GetByID retrieves one practice with its educator
func (r *PracticeRepository) GetByID(ctx context.Context, id string) (*models.Practice, error) {
	querySql, args, err := r.sb.Select(
		"p.id", "p.educator_id", "p.title", "p.description", "p.subject",
		"p.grade_level", "p.learning_level", "p.special_needs", "p.special_needs_details",
		"p.implementation_date", "p.tags", "p.is_published", "p.created_at", "p.updated_at",
		"e.name", "e.bio", "e.specialties", "e.contact_enabled",
	).
		From("practices p").
		Join("educators e ON p.educator_id = e.id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get practice query: %w", err)
	}

	var p models.Practice
	var details sql.NullString
	var educator models.Educator

	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&p.ID, &p.EducatorID, &p.Title, &p.Description, &p.Subject,
		&p.GradeLevel, &p.LearningLevel, &p.SpecialNeeds, &details,
		&p.ImplementationDate, &p.Tags, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
		&educator.Name, &educator.Bio, &educator.Specialties, &educator.ContactEnabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPracticeNotFound
		}
		return nil, fmt.Errorf("failed to get practice: %w", err)
	}

	p.SpecialNeedsDetails = helpers.StringPtrFromNull(details)
	educator.ID = p.EducatorID
	p.Educator = &educator

	return &p, nil
}

// GetOwnerInfo retrieves just the ownership columns of a practice, plus the
// owner's notification address. Cheaper than GetByID for guard checks.
func (r *PracticeRepository) GetOwnerInfo(ctx context.Context, id string) (*models.Practice, error) {
	querySql, args, err := r.sb.Select(
		"p.id", "p.educator_id", "p.title", "p.is_published",
		"e.name", "e.email", "e.contact_enabled",
	).
		From("practices p").
		Join("educators e ON p.educator_id = e.id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build practice owner query: %w", err)
	}

	var p models.Practice
	var educator models.Educator

	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&p.ID, &p.EducatorID, &p.Title, &p.IsPublished,
		&educator.Name, &educator.Email, &educator.ContactEnabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPracticeNotFound
		}
		return nil, fmt.Errorf("failed to get practice owner info: %w", err)
	}

	educator.ID = p.EducatorID
	p.Educator = &educator

	return &p, nil
}

// Create inserts a new practice
func (r *PracticeRepository) Create(ctx context.Context, p *models.Practice) error {
	now := time.Now()
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}

	// Details only make sense alongside the special needs flag.
	var details *string
	if p.SpecialNeeds {
		details = p.SpecialNeedsDetails
	}
	p.SpecialNeedsDetails = details

	querySql, args, err := r.sb.Insert("practices").
		Columns("id", "educator_id", "title", "description", "subject",
			"grade_level", "learning_level", "special_needs", "special_needs_details",
			"implementation_date", "tags", "is_published", "created_at", "updated_at").
		Values(p.ID, p.EducatorID, p.Title, p.Description, p.Subject,
			p.GradeLevel, p.LearningLevel, p.SpecialNeeds, helpers.GetNullString(details),
			p.ImplementationDate, p.Tags, p.IsPublished, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert practice query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting practice")
		return fmt.Errorf("failed to insert practice: %w", err)
	}

	return nil
}

// Update applies a partial update and returns the fresh row with its educator
func (r *PracticeRepository) Update(ctx context.Context, id string, req *dto.UpdatePracticeRequest) (*models.Practice, error) {
	update := r.sb.Update("practices").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id})

	if req.Title != nil {
		update = update.Set("title", *req.Title)
	}
	if req.Description != nil {
		update = update.Set("description", *req.Description)
	}
	if req.Subject != nil {
		update = update.Set("subject", *req.Subject)
	}
	if req.GradeLevel != nil {
		update = update.Set("grade_level", *req.GradeLevel)
	}
	if req.LearningLevel != nil {
		update = update.Set("learning_level", *req.LearningLevel)
	}
	if req.SpecialNeeds != nil {
		update = update.Set("special_needs", *req.SpecialNeeds)
		if !*req.SpecialNeeds {
			update = update.Set("special_needs_details", nil)
		}
	}
	if req.SpecialNeedsDetails != nil {
		update = update.Set("special_needs_details", *req.SpecialNeedsDetails)
	}
	if req.ImplementationDate != nil {
		update = update.Set("implementation_date", *req.ImplementationDate)
	}
	if req.Tags != nil {
		update = update.Set("tags", *req.Tags)
	}
	if req.IsPublished != nil {
		update = update.Set("is_published", *req.IsPublished)
	}

	querySql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update practice query: %w", err)
	}

	if _, err := r.db.Exec(ctx, querySql, args...); err != nil {
		logger.Error().Err(err).Msg("Error updating practice")
		return nil, fmt.Errorf("failed to update practice: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a practice; comments, ratings, contacts and media cascade
func (r *PracticeRepository) Delete(ctx context.Context, id string) error {
	querySql, args, err := r.sb.Delete("practices").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete practice query: %w", err)
	}

	tag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting practice")
		return fmt.Errorf("failed to delete practice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPracticeNotFound
	}

	return nil
}
