package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	EducatorRepository *EducatorRepository
	PracticeRepository *PracticeRepository
	CommentRepository  *CommentRepository
	RatingRepository   *RatingRepository
	ContactRepository  *ContactRepository
	MediaRepository    *MediaRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		EducatorRepository: NewEducatorRepository(db),
		PracticeRepository: NewPracticeRepository(db),
		CommentRepository:  NewCommentRepository(db),
		RatingRepository:   NewRatingRepository(db),
		ContactRepository:  NewContactRepository(db),
		MediaRepository:    NewMediaRepository(db),
	}
}
