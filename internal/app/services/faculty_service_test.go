package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

func newFacultyService(facultyRepo *MockFacultyRepository, images *MockImageStore) FacultyService {
	return NewFacultyService(facultyRepo, images, zerolog.Nop())
}

func TestFacultyService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a faculty member", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		svc := newFacultyService(facultyRepo, new(MockImageStore))

		facultyRepo.On("Create", ctx, mock.AnythingOfType("*models.Faculty")).Return(int64(3), nil)

		faculty, err := svc.Create(ctx, "Dr. Emily Davis", "Physics", "Quantum Mechanics", nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), faculty.ID)
		assert.Equal(t, "Physics", faculty.Department)
		assert.Nil(t, faculty.Image)
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		svc := newFacultyService(facultyRepo, new(MockImageStore))

		_, err := svc.Create(ctx, "  ", "Physics", "Quantum Mechanics", nil)

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		facultyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFacultyService_Update(t *testing.T) {
	ctx := context.Background()
	storedImage := "abc123.png"

	t.Run("preserves the stored image when none is supplied", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		images := new(MockImageStore)
		svc := newFacultyService(facultyRepo, images)

		facultyRepo.On("GetByID", ctx, int64(1)).Return(&models.Faculty{
			ID: 1, Name: "Dr. John Smith", Department: "Computer Science", Subject: "Data Structures", Image: &storedImage,
		}, nil)
		facultyRepo.On("Update", ctx, mock.AnythingOfType("*models.Faculty")).Return(nil)

		faculty, err := svc.Update(ctx, 1, "Dr. John Smith", "Computer Science", "Algorithms", nil)

		assert.NoError(t, err)
		assert.NotNil(t, faculty.Image)
		assert.Equal(t, storedImage, *faculty.Image)
		images.AssertNotCalled(t, "DeleteFile", mock.Anything)
	})

	t.Run("removes the old image when replaced", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		images := new(MockImageStore)
		svc := newFacultyService(facultyRepo, images)

		replacement := "def456.jpg"
		facultyRepo.On("GetByID", ctx, int64(1)).Return(&models.Faculty{
			ID: 1, Name: "Dr. John Smith", Department: "Computer Science", Subject: "Data Structures", Image: &storedImage,
		}, nil)
		images.On("DeleteFile", storedImage).Return(nil)
		facultyRepo.On("Update", ctx, mock.AnythingOfType("*models.Faculty")).Return(nil)

		faculty, err := svc.Update(ctx, 1, "Dr. John Smith", "Computer Science", "Data Structures", &replacement)

		assert.NoError(t, err)
		assert.Equal(t, replacement, *faculty.Image)
		images.AssertExpectations(t)
	})

	t.Run("fails when the faculty does not exist", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		svc := newFacultyService(facultyRepo, new(MockImageStore))

		facultyRepo.On("GetByID", ctx, int64(99)).Return(nil, apperrors.ErrFacultyNotFound)

		_, err := svc.Update(ctx, 99, "Dr. Nobody", "Physics", "Optics", nil)

		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	})
}

func TestFacultyService_Delete(t *testing.T) {
	ctx := context.Background()
	storedImage := "abc123.png"

	t.Run("releases the image only after a successful delete", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		images := new(MockImageStore)
		svc := newFacultyService(facultyRepo, images)

		facultyRepo.On("GetByID", ctx, int64(1)).Return(&models.Faculty{
			ID: 1, Name: "Dr. John Smith", Department: "Computer Science", Subject: "Data Structures", Image: &storedImage,
		}, nil)
		facultyRepo.On("Delete", ctx, int64(1)).Return(nil)
		images.On("DeleteFile", storedImage).Return(nil)

		err := svc.Delete(ctx, 1)

		assert.NoError(t, err)
		images.AssertExpectations(t)
	})

	t.Run("keeps the image when the delete fails", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		images := new(MockImageStore)
		svc := newFacultyService(facultyRepo, images)

		facultyRepo.On("GetByID", ctx, int64(1)).Return(&models.Faculty{
			ID: 1, Name: "Dr. John Smith", Department: "Computer Science", Subject: "Data Structures", Image: &storedImage,
		}, nil)
		facultyRepo.On("Delete", ctx, int64(1)).Return(errors.New("tx aborted"))

		err := svc.Delete(ctx, 1)

		assert.Error(t, err)
		images.AssertNotCalled(t, "DeleteFile", mock.Anything)
	})

	t.Run("fails for a missing faculty", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		images := new(MockImageStore)
		svc := newFacultyService(facultyRepo, images)

		facultyRepo.On("GetByID", ctx, int64(99)).Return(nil, apperrors.ErrFacultyNotFound)

		err := svc.Delete(ctx, 99)

		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
		facultyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestFacultyService_GetByDepartment(t *testing.T) {
	ctx := context.Background()

	facultyRepo := new(MockFacultyRepository)
	svc := newFacultyService(facultyRepo, new(MockImageStore))

	facultyRepo.On("GetByDepartment", ctx, "Computer Science").Return([]*models.Faculty{
		{ID: 1, Name: "Dr. John Smith", Department: "Computer Science", Subject: "Data Structures"},
		{ID: 2, Name: "Dr. Sarah Johnson", Department: "Computer Science", Subject: "Algorithms"},
	}, nil)

	faculty, err := svc.GetByDepartment(ctx, "Computer Science")

	assert.NoError(t, err)
	assert.Len(t, faculty, 2)

	_, err = svc.GetByDepartment(ctx, "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
