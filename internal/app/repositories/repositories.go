package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository  *StudentRepository
	FacultyRepository  *FacultyRepository
	FeedbackRepository *FeedbackRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:  NewStudentRepository(db),
		FacultyRepository:  NewFacultyRepository(db),
		FeedbackRepository: NewFeedbackRepository(db),
	}
}
