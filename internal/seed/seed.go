package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusrate/campusrate/internal/app/models"
)

// FacultyStore is the subset of the faculty repository seeding needs.
type FacultyStore interface {
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) (int64, error)
}

var sampleFaculty = []models.Faculty{
	{Name: "Dr. John Smith", Department: "Computer Science", Subject: "Data Structures"},
	{Name: "Dr. Sarah Johnson", Department: "Computer Science", Subject: "Algorithms"},
	{Name: "Dr. Michael Brown", Department: "Mathematics", Subject: "Calculus"},
	{Name: "Dr. Emily Davis", Department: "Physics", Subject: "Quantum Mechanics"},
	{Name: "Dr. Robert Wilson", Department: "Computer Science", Subject: "Database Systems"},
}

// Faculty inserts sample faculty members when the registry is empty.
// A non-empty registry is left untouched.
func Faculty(ctx context.Context, store FacultyStore, logger zerolog.Logger) error {
	existing, err := store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error checking faculty registry: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range sampleFaculty {
		faculty := sampleFaculty[i]
		if _, err := store.Create(ctx, &faculty); err != nil {
			return fmt.Errorf("error seeding faculty %q: %w", faculty.Name, err)
		}
	}

	logger.Info().Int("count", len(sampleFaculty)).Msg("Seeded sample faculty data")
	return nil
}
