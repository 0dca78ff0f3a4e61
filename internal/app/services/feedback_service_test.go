package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

func newFeedbackService(feedbackRepo *MockFeedbackRepository, facultyRepo *MockFacultyRepository) FeedbackService {
	return NewFeedbackService(feedbackRepo, facultyRepo, zerolog.Nop())
}

func sampleFacultyRecord() *models.Faculty {
	return &models.Faculty{ID: 1, Name: "Dr. John Smith", Department: "Computer Science", Subject: "Data Structures"}
}

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("records a valid submission", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		facultyRepo.On("GetByID", ctx, int64(1)).Return(sampleFacultyRecord(), nil)
		feedbackRepo.On("HasFeedback", ctx, int64(7), int64(1)).Return(false, nil)
		feedbackRepo.On("Create", ctx, mock.AnythingOfType("*models.Feedback")).Return(int64(42), nil)

		req := &dto.SubmitFeedbackRequest{
			FacultyID:      1,
			Performance:    4,
			Knowledge:      5,
			TeachingSkills: 4,
			Communication:  3,
			Behavior:       5,
		}

		feedback, err := svc.Submit(ctx, 7, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), feedback.ID)
		assert.Equal(t, int64(7), feedback.StudentID)
		assert.Equal(t, 4, feedback.Performance)
		assert.Equal(t, 5, feedback.Behavior)
		feedbackRepo.AssertExpectations(t)
	})

	t.Run("rejects out of range ratings without writing", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		req := &dto.SubmitFeedbackRequest{
			FacultyID:      1,
			Performance:    6,
			Knowledge:      5,
			TeachingSkills: 4,
			Communication:  3,
			Behavior:       5,
		}

		_, err := svc.Submit(ctx, 7, req)

		assert.ErrorIs(t, err, apperrors.ErrRatingOutOfRange)
		feedbackRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a zero rating dimension", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		req := &dto.SubmitFeedbackRequest{
			FacultyID:      1,
			Performance:    4,
			Knowledge:      5,
			TeachingSkills: 0,
			Communication:  3,
			Behavior:       5,
		}

		_, err := svc.Submit(ctx, 7, req)

		assert.ErrorIs(t, err, apperrors.ErrRatingOutOfRange)
	})

	t.Run("rejects a second submission for the same faculty", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		facultyRepo.On("GetByID", ctx, int64(1)).Return(sampleFacultyRecord(), nil)
		feedbackRepo.On("HasFeedback", ctx, int64(7), int64(1)).Return(true, nil)

		req := &dto.SubmitFeedbackRequest{
			FacultyID:      1,
			Performance:    4,
			Knowledge:      5,
			TeachingSkills: 4,
			Communication:  3,
			Behavior:       5,
		}

		_, err := svc.Submit(ctx, 7, req)

		assert.ErrorIs(t, err, apperrors.ErrFeedbackAlreadyExists)
		feedbackRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("surfaces a concurrent duplicate from the unique constraint", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		facultyRepo.On("GetByID", ctx, int64(1)).Return(sampleFacultyRecord(), nil)
		feedbackRepo.On("HasFeedback", ctx, int64(7), int64(1)).Return(false, nil)
		feedbackRepo.On("Create", ctx, mock.AnythingOfType("*models.Feedback")).Return(int64(0), apperrors.ErrFeedbackAlreadyExists)

		req := &dto.SubmitFeedbackRequest{
			FacultyID:      1,
			Performance:    4,
			Knowledge:      5,
			TeachingSkills: 4,
			Communication:  3,
			Behavior:       5,
		}

		_, err := svc.Submit(ctx, 7, req)

		assert.ErrorIs(t, err, apperrors.ErrFeedbackAlreadyExists)
	})

	t.Run("rejects submission for a missing faculty", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		facultyRepo.On("GetByID", ctx, int64(99)).Return(nil, apperrors.ErrFacultyNotFound)

		req := &dto.SubmitFeedbackRequest{
			FacultyID:      99,
			Performance:    4,
			Knowledge:      5,
			TeachingSkills: 4,
			Communication:  3,
			Behavior:       5,
		}

		_, err := svc.Submit(ctx, 7, req)

		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
		feedbackRepo.AssertNotCalled(t, "HasFeedback", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFeedbackService_AverageRatings(t *testing.T) {
	ctx := context.Background()

	t.Run("single feedback averages equal its ratings", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		facultyRepo.On("GetByID", ctx, int64(1)).Return(sampleFacultyRecord(), nil)
		feedbackRepo.On("GetAverageRatings", ctx, int64(1)).Return(&models.RatingAverages{
			Performance:    4,
			Knowledge:      5,
			TeachingSkills: 4,
			Communication:  3,
			Behavior:       5,
			TotalFeedback:  1,
		}, nil)

		averages, err := svc.AverageRatings(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 4.0, averages.Performance)
		assert.Equal(t, 5.0, averages.Knowledge)
		assert.Equal(t, 4.2, averages.Overall)
		assert.Equal(t, int64(1), averages.TotalFeedback)
	})

	t.Run("rounds dimension means to two decimals", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		// means of ratings [5,3,4] per dimension
		raw := &models.RatingAverages{
			Performance:    4,
			Knowledge:      4,
			TeachingSkills: 4,
			Communication:  4,
			Behavior:       4,
			TotalFeedback:  3,
		}
		facultyRepo.On("GetByID", ctx, int64(1)).Return(sampleFacultyRecord(), nil)
		feedbackRepo.On("GetAverageRatings", ctx, int64(1)).Return(raw, nil)

		averages, err := svc.AverageRatings(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 4.0, averages.Performance)
		assert.Equal(t, 4.0, averages.Overall)
	})

	t.Run("rounds repeating decimals half away from zero", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		// means of ratings [1,2,2] per dimension: 5/3 = 1.666...
		third := 5.0 / 3.0
		raw := &models.RatingAverages{
			Performance:    third,
			Knowledge:      third,
			TeachingSkills: third,
			Communication:  third,
			Behavior:       third,
			TotalFeedback:  3,
		}
		facultyRepo.On("GetByID", ctx, int64(1)).Return(sampleFacultyRecord(), nil)
		feedbackRepo.On("GetAverageRatings", ctx, int64(1)).Return(raw, nil)

		averages, err := svc.AverageRatings(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 1.67, averages.Performance)
		assert.Equal(t, 1.67, averages.Overall)
	})

	t.Run("returns nil when the faculty has no feedback", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		facultyRepo.On("GetByID", ctx, int64(1)).Return(sampleFacultyRecord(), nil)
		feedbackRepo.On("GetAverageRatings", ctx, int64(1)).Return(nil, nil)

		averages, err := svc.AverageRatings(ctx, 1)

		assert.NoError(t, err)
		assert.Nil(t, averages)
	})

	t.Run("fails for a missing faculty", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepository)
		facultyRepo := new(MockFacultyRepository)
		svc := newFeedbackService(feedbackRepo, facultyRepo)

		facultyRepo.On("GetByID", ctx, int64(99)).Return(nil, apperrors.ErrFacultyNotFound)

		_, err := svc.AverageRatings(ctx, 99)

		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	})
}

func TestFeedbackService_AllAverages(t *testing.T) {
	ctx := context.Background()

	feedbackRepo := new(MockFeedbackRepository)
	facultyRepo := new(MockFacultyRepository)
	svc := newFeedbackService(feedbackRepo, facultyRepo)

	feedbackRepo.On("GetAllAverages", ctx).Return(map[int64]*models.RatingAverages{
		1: {
			Performance:    3.5,
			Knowledge:      4.5,
			TeachingSkills: 3.5,
			Communication:  2.5,
			Behavior:       4.5,
			TotalFeedback:  2,
		},
	}, nil)

	averages, err := svc.AllAverages(ctx)

	assert.NoError(t, err)
	assert.Len(t, averages, 1)
	assert.Equal(t, 3.5, averages[1].Performance)
	assert.Equal(t, 3.7, averages[1].Overall)
	// faculty without feedback are simply absent
	assert.Nil(t, averages[2])
}

func TestFeedbackService_HasFeedback(t *testing.T) {
	ctx := context.Background()

	feedbackRepo := new(MockFeedbackRepository)
	facultyRepo := new(MockFacultyRepository)
	svc := newFeedbackService(feedbackRepo, facultyRepo)

	feedbackRepo.On("HasFeedback", ctx, int64(7), int64(1)).Return(true, nil)

	exists, err := svc.HasFeedback(ctx, 7, 1)

	assert.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.HasFeedback(ctx, 0, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
