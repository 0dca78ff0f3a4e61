package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/db"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
	"github.com/campusrate/campusrate/internal/pkg/logger"
)

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// facultyColumns is the scan order shared by every faculty query.
var facultyColumns = []string{"id", "name", "department", "subject", "image", "created_at"}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	faculty := &models.Faculty{}
	err := row.Scan(&faculty.ID, &faculty.Name, &faculty.Department, &faculty.Subject, &faculty.Image, &faculty.CreatedAt)
	if err != nil {
		return nil, err
	}
	return faculty, nil
}

// Create inserts a new faculty member and returns its ID
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculty").
		Columns("name", "department", "subject", "image").
		Values(faculty.Name, faculty.Department, faculty.Subject, faculty.Image).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	return id, nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty by ID SQL")
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by ID: %w", err)
	}

	return faculty, nil
}

// GetAll retrieves all faculty members sorted by name ascending
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	return r.list(ctx, nil)
}

// GetByDepartment retrieves faculty members of one department sorted by
// name ascending
func (r *FacultyRepository) GetByDepartment(ctx context.Context, department string) ([]*models.Faculty, error) {
	return r.list(ctx, squirrel.Eq{"department": department})
}

func (r *FacultyRepository) list(ctx context.Context, where interface{}) ([]*models.Faculty, error) {
	builder := r.sb.Select(facultyColumns...).
		From("faculty").
		OrderBy("name ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list faculty SQL")
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	faculty := []*models.Faculty{}
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty row during list")
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculty = append(faculty, f)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty rows")
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculty, nil
}

// Update updates an existing faculty member. The image reference is
// written exactly as supplied; preserving the previous image when no
// replacement was uploaded is the service's responsibility.
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Update("faculty").
		SetMap(map[string]interface{}{
			"name":       faculty.Name,
			"department": faculty.Department,
			"subject":    faculty.Subject,
			"image":      faculty.Image,
		}).
		Where(squirrel.Eq{"id": faculty.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update faculty SQL")
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", faculty.ID).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Delete removes a faculty member together with all feedback that
// references it, in a single transaction. Partial deletion is never
// observable: any failure rolls both statements back.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		delFeedback, feedbackArgs, err := r.sb.Delete("feedback").
			Where(squirrel.Eq{"faculty_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete feedback query: %w", err)
		}

		if _, err := tx.Exec(ctx, delFeedback, feedbackArgs...); err != nil {
			logger.Error().Err(err).Int64("facultyID", id).Msg("Error deleting feedback for faculty")
			return fmt.Errorf("error deleting feedback for faculty: %w", err)
		}

		delFaculty, facultyArgs, err := r.sb.Delete("faculty").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete faculty query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, delFaculty, facultyArgs...)
		if err != nil {
			logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
			return fmt.Errorf("error deleting faculty: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrFacultyNotFound
		}

		return nil
	})
}
