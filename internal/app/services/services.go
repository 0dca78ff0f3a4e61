package services

import (
	"context"

	"github.com/campusrate/campusrate/internal/app/models"
)

// Store interfaces consumed by the services. The concrete pgx-backed
// implementations live in the repositories package; tests substitute
// mocks.

// StudentRepository is the student persistence surface
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// FacultyRepository is the faculty persistence surface
type FacultyRepository interface {
	Create(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	GetByDepartment(ctx context.Context, department string) ([]*models.Faculty, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
}

// FeedbackRepository is the feedback persistence surface
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) (int64, error)
	HasFeedback(ctx context.Context, studentID, facultyID int64) (bool, error)
	GetByFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyFeedback, error)
	GetAverageRatings(ctx context.Context, facultyID int64) (*models.RatingAverages, error)
	GetAllAverages(ctx context.Context) (map[int64]*models.RatingAverages, error)
	GetAllWithDetails(ctx context.Context) ([]*models.FeedbackDetails, error)
}

// ImageStore removes stored faculty photos when their reference is
// replaced or the owning faculty is deleted
type ImageStore interface {
	DeleteFile(filePath string) error
}
