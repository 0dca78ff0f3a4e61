package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
	"github.com/campusrate/campusrate/internal/pkg/dberrors"
	"github.com/campusrate/campusrate/internal/pkg/logger"
)

// feedbackPairConstraint enforces one feedback per (student, faculty).
// Hitting it is the authoritative duplicate-submission signal; the
// HasFeedback pre-check is only a fast path.
const feedbackPairConstraint = "feedback_student_faculty_key"

// FeedbackRepository handles feedback database operations
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new feedback row and returns its ID
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) (int64, error) {
	sql, args, err := r.sb.Insert("feedback").
		Columns("student_id", "faculty_id", "performance", "knowledge", "teaching_skills", "communication", "behavior", "comments").
		Values(feedback.StudentID, feedback.FacultyID, feedback.Performance, feedback.Knowledge,
			feedback.TeachingSkills, feedback.Communication, feedback.Behavior, feedback.Comments).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create feedback SQL")
		return 0, fmt.Errorf("failed to build create feedback query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, feedbackPairConstraint) {
			return 0, apperrors.ErrFeedbackAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create feedback query")
		return 0, fmt.Errorf("error creating feedback: %w", err)
	}

	return id, nil
}

// HasFeedback reports whether the student already submitted feedback
// for the faculty member
func (r *FeedbackRepository) HasFeedback(ctx context.Context, studentID, facultyID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("feedback").
		Where(squirrel.Eq{"student_id": studentID, "faculty_id": facultyID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building has feedback SQL")
		return false, fmt.Errorf("failed to build has feedback query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("facultyID", facultyID).Msg("Error checking feedback existence")
		return false, fmt.Errorf("error checking feedback existence: %w", err)
	}

	return exists, nil
}

// GetByFaculty retrieves all feedback for a faculty member joined with
// each submitting student's department, newest first
func (r *FeedbackRepository) GetByFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyFeedback, error) {
	sql, args, err := r.sb.Select(
		"f.id", "f.student_id", "f.faculty_id",
		"f.performance", "f.knowledge", "f.teaching_skills", "f.communication", "f.behavior",
		"f.comments", "f.created_at",
		"s.department AS student_department").
		From("feedback f").
		Join("students s ON f.student_id = s.id").
		Where(squirrel.Eq{"f.faculty_id": facultyID}).
		OrderBy("f.created_at DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get feedback by faculty SQL")
		return nil, fmt.Errorf("failed to build get feedback by faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing get feedback by faculty query")
		return nil, fmt.Errorf("error querying feedback by faculty: %w", err)
	}
	defer rows.Close()

	feedback := []*models.FacultyFeedback{}
	for rows.Next() {
		fb := &models.FacultyFeedback{}
		if err := rows.Scan(
			&fb.ID, &fb.StudentID, &fb.FacultyID,
			&fb.Performance, &fb.Knowledge, &fb.TeachingSkills, &fb.Communication, &fb.Behavior,
			&fb.Comments, &fb.CreatedAt,
			&fb.StudentDepartment); err != nil {
			logger.Error().Err(err).Msg("Error scanning feedback row")
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		feedback = append(feedback, fb)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating feedback rows")
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return feedback, nil
}

// GetAverageRatings computes the raw (unrounded) per-dimension averages
// for one faculty member. Returns nil when no feedback exists; callers
// must treat that as "no data", not as zeros.
func (r *FeedbackRepository) GetAverageRatings(ctx context.Context, facultyID int64) (*models.RatingAverages, error) {
	sql, args, err := r.sb.Select(
		"AVG(performance)::float8",
		"AVG(knowledge)::float8",
		"AVG(teaching_skills)::float8",
		"AVG(communication)::float8",
		"AVG(behavior)::float8",
		"COUNT(*)").
		From("feedback").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building average ratings SQL")
		return nil, fmt.Errorf("failed to build average ratings query: %w", err)
	}

	var (
		performance, knowledge, teachingSkills, communication, behavior *float64
		total                                                           int64
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&performance, &knowledge, &teachingSkills, &communication, &behavior, &total)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error scanning average ratings row")
		return nil, fmt.Errorf("error computing average ratings: %w", err)
	}

	if total == 0 {
		return nil, nil
	}

	return &models.RatingAverages{
		Performance:    *performance,
		Knowledge:      *knowledge,
		TeachingSkills: *teachingSkills,
		Communication:  *communication,
		Behavior:       *behavior,
		TotalFeedback:  total,
	}, nil
}

// GetAllAverages computes raw per-dimension averages grouped by
// faculty. Faculty without feedback are absent from the map.
func (r *FeedbackRepository) GetAllAverages(ctx context.Context) (map[int64]*models.RatingAverages, error) {
	sql, args, err := r.sb.Select(
		"faculty_id",
		"AVG(performance)::float8",
		"AVG(knowledge)::float8",
		"AVG(teaching_skills)::float8",
		"AVG(communication)::float8",
		"AVG(behavior)::float8",
		"COUNT(*)").
		From("feedback").
		GroupBy("faculty_id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building all averages SQL")
		return nil, fmt.Errorf("failed to build all averages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing all averages query")
		return nil, fmt.Errorf("error querying all averages: %w", err)
	}
	defer rows.Close()

	averages := map[int64]*models.RatingAverages{}
	for rows.Next() {
		var facultyID int64
		avg := &models.RatingAverages{}
		if err := rows.Scan(&facultyID,
			&avg.Performance, &avg.Knowledge, &avg.TeachingSkills, &avg.Communication, &avg.Behavior,
			&avg.TotalFeedback); err != nil {
			logger.Error().Err(err).Msg("Error scanning averages row")
			return nil, fmt.Errorf("error scanning averages row: %w", err)
		}
		averages[facultyID] = avg
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating averages rows")
		return nil, fmt.Errorf("error iterating averages rows: %w", err)
	}

	return averages, nil
}

// GetAllWithDetails retrieves every feedback row joined with the
// submitting student's name and department and the target faculty's
// name, department and subject, newest first
func (r *FeedbackRepository) GetAllWithDetails(ctx context.Context) ([]*models.FeedbackDetails, error) {
	sql, args, err := r.sb.Select(
		"f.id", "f.student_id", "f.faculty_id",
		"f.performance", "f.knowledge", "f.teaching_skills", "f.communication", "f.behavior",
		"f.comments", "f.created_at",
		"s.name AS student_name",
		"s.department AS student_department",
		"fac.name AS faculty_name",
		"fac.department AS faculty_department",
		"fac.subject AS faculty_subject").
		From("feedback f").
		Join("students s ON f.student_id = s.id").
		Join("faculty fac ON f.faculty_id = fac.id").
		OrderBy("f.created_at DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building all feedback details SQL")
		return nil, fmt.Errorf("failed to build all feedback details query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing all feedback details query")
		return nil, fmt.Errorf("error querying all feedback details: %w", err)
	}
	defer rows.Close()

	feedback := []*models.FeedbackDetails{}
	for rows.Next() {
		fd := &models.FeedbackDetails{}
		if err := rows.Scan(
			&fd.ID, &fd.StudentID, &fd.FacultyID,
			&fd.Performance, &fd.Knowledge, &fd.TeachingSkills, &fd.Communication, &fd.Behavior,
			&fd.Comments, &fd.CreatedAt,
			&fd.StudentName, &fd.StudentDepartment,
			&fd.FacultyName, &fd.FacultyDepartment, &fd.FacultySubject); err != nil {
			logger.Error().Err(err).Msg("Error scanning feedback details row")
			return nil, fmt.Errorf("error scanning feedback details row: %w", err)
		}
		feedback = append(feedback, fd)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating feedback details rows")
		return nil, fmt.Errorf("error iterating feedback details rows: %w", err)
	}

	return feedback, nil
}
