package services

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

// FeedbackService defines the interface for the feedback engine
type FeedbackService interface {
	HasFeedback(ctx context.Context, studentID, facultyID int64) (bool, error)
	Submit(ctx context.Context, studentID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error)
	AverageRatings(ctx context.Context, facultyID int64) (*models.RatingAverages, error)
	AllAverages(ctx context.Context) (map[int64]*models.RatingAverages, error)
	FeedbackForFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyFeedback, error)
	AllFeedbackWithDetails(ctx context.Context) ([]*models.FeedbackDetails, error)
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	feedbackRepo FeedbackRepository
	facultyRepo  FacultyRepository
	logger       zerolog.Logger
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo FeedbackRepository, facultyRepo FacultyRepository, logger zerolog.Logger) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		facultyRepo:  facultyRepo,
		logger:       logger,
	}
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundAverages publishes a raw averages record with every dimension
// rounded and the overall average derived from the unrounded means.
func roundAverages(raw *models.RatingAverages) *models.RatingAverages {
	overall := (raw.Performance + raw.Knowledge + raw.TeachingSkills + raw.Communication + raw.Behavior) / 5

	return &models.RatingAverages{
		Performance:    round2(raw.Performance),
		Knowledge:      round2(raw.Knowledge),
		TeachingSkills: round2(raw.TeachingSkills),
		Communication:  round2(raw.Communication),
		Behavior:       round2(raw.Behavior),
		Overall:        round2(overall),
		TotalFeedback:  raw.TotalFeedback,
	}
}

// HasFeedback reports whether the (student, faculty) pair already has a
// recorded feedback row
func (s *feedbackServiceImpl) HasFeedback(ctx context.Context, studentID, facultyID int64) (bool, error) {
	if studentID <= 0 || facultyID <= 0 {
		return false, fmt.Errorf("%w: invalid student or faculty ID", apperrors.ErrValidationFailed)
	}

	return s.feedbackRepo.HasFeedback(ctx, studentID, facultyID)
}

// Submit records a new feedback row. Preconditions: the faculty member
// exists, every rating lies in [1,5] and the student has not rated this
// faculty member before. Any violated precondition rejects the
// submission without a partial write; the unique (student_id,
// faculty_id) constraint backstops the eligibility pre-check under
// concurrent submissions.
func (s *feedbackServiceImpl) Submit(ctx context.Context, studentID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	ratings := models.Ratings{
		Performance:    req.Performance,
		Knowledge:      req.Knowledge,
		TeachingSkills: req.TeachingSkills,
		Communication:  req.Communication,
		Behavior:       req.Behavior,
	}
	if !ratings.Valid() {
		return nil, apperrors.ErrRatingOutOfRange
	}

	if _, err := s.facultyRepo.GetByID(ctx, req.FacultyID); err != nil {
		return nil, err
	}

	exists, err := s.feedbackRepo.HasFeedback(ctx, studentID, req.FacultyID)
	if err != nil {
		return nil, fmt.Errorf("error checking feedback eligibility: %w", err)
	}
	if exists {
		return nil, apperrors.ErrFeedbackAlreadyExists
	}

	feedback := &models.Feedback{
		StudentID: studentID,
		FacultyID: req.FacultyID,
		Ratings:   ratings,
		Comments:  req.Comments,
	}

	id, err := s.feedbackRepo.Create(ctx, feedback)
	if err != nil {
		return nil, err
	}

	feedback.ID = id
	s.logger.Info().Int64("feedbackID", id).Int64("facultyID", req.FacultyID).Msg("Feedback submitted")
	return feedback, nil
}

// AverageRatings returns the aggregated ratings of one faculty member,
// rounded to two decimals. A nil result means no feedback exists yet,
// which callers must not conflate with zero averages.
func (s *feedbackServiceImpl) AverageRatings(ctx context.Context, facultyID int64) (*models.RatingAverages, error) {
	if _, err := s.facultyRepo.GetByID(ctx, facultyID); err != nil {
		return nil, err
	}

	raw, err := s.feedbackRepo.GetAverageRatings(ctx, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error computing average ratings: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	return roundAverages(raw), nil
}

// AllAverages returns the aggregated ratings of every faculty member
// that has at least one feedback row. Faculty without feedback are
// absent from the map; display placeholders are the presentation
// layer's concern.
func (s *feedbackServiceImpl) AllAverages(ctx context.Context) (map[int64]*models.RatingAverages, error) {
	raw, err := s.feedbackRepo.GetAllAverages(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing all averages: %w", err)
	}

	averages := make(map[int64]*models.RatingAverages, len(raw))
	for facultyID, avg := range raw {
		averages[facultyID] = roundAverages(avg)
	}
	return averages, nil
}

// FeedbackForFaculty lists the feedback of one faculty member joined
// with each submitting student's department, newest first
func (s *feedbackServiceImpl) FeedbackForFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyFeedback, error) {
	if _, err := s.facultyRepo.GetByID(ctx, facultyID); err != nil {
		return nil, err
	}

	feedback, err := s.feedbackRepo.GetByFaculty(ctx, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return feedback, nil
}

// AllFeedbackWithDetails lists every feedback row with student and
// faculty details for the administrator, newest first
func (s *feedbackServiceImpl) AllFeedbackWithDetails(ctx context.Context) ([]*models.FeedbackDetails, error) {
	feedback, err := s.feedbackRepo.GetAllWithDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback details: %w", err)
	}
	return feedback, nil
}
