package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campusrate/campusrate/internal/app/models"
)

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	args := m.Called(ctx, student)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockFacultyRepository struct {
	mock.Mock
}

func (m *MockFacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (int64, error) {
	args := m.Called(ctx, faculty)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Faculty), args.Error(1)
}

func (m *MockFacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Faculty), args.Error(1)
}

func (m *MockFacultyRepository) GetByDepartment(ctx context.Context, department string) ([]*models.Faculty, error) {
	args := m.Called(ctx, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Faculty), args.Error(1)
}

func (m *MockFacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	args := m.Called(ctx, faculty)
	return args.Error(0)
}

func (m *MockFacultyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) (int64, error) {
	args := m.Called(ctx, feedback)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedbackRepository) HasFeedback(ctx context.Context, studentID, facultyID int64) (bool, error) {
	args := m.Called(ctx, studentID, facultyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) GetByFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyFeedback, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FacultyFeedback), args.Error(1)
}

func (m *MockFeedbackRepository) GetAverageRatings(ctx context.Context, facultyID int64) (*models.RatingAverages, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RatingAverages), args.Error(1)
}

func (m *MockFeedbackRepository) GetAllAverages(ctx context.Context) (map[int64]*models.RatingAverages, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*models.RatingAverages), args.Error(1)
}

func (m *MockFeedbackRepository) GetAllWithDetails(ctx context.Context) ([]*models.FeedbackDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FeedbackDetails), args.Error(1)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) DeleteFile(filePath string) error {
	args := m.Called(filePath)
	return args.Error(0)
}
