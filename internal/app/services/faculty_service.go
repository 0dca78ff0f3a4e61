package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

// FacultyService defines the interface for faculty registry operations
type FacultyService interface {
	Create(ctx context.Context, name, department, subject string, image *string) (*models.Faculty, error)
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	GetByDepartment(ctx context.Context, department string) ([]*models.Faculty, error)
	Update(ctx context.Context, id int64, name, department, subject string, newImage *string) (*models.Faculty, error)
	Delete(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo FacultyRepository
	images      ImageStore
	logger      zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo FacultyRepository, images ImageStore, logger zerolog.Logger) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
		images:      images,
		logger:      logger,
	}
}

// validateFields validates faculty data before database operations
func (s *facultyServiceImpl) validateFields(name, department, subject string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(department) == "" {
		return fmt.Errorf("%w: department cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(subject) == "" {
		return fmt.Errorf("%w: subject cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// Create adds a new faculty member. There is no uniqueness constraint
// on faculty names.
func (s *facultyServiceImpl) Create(ctx context.Context, name, department, subject string, image *string) (*models.Faculty, error) {
	if err := s.validateFields(name, department, subject); err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		Name:       name,
		Department: department,
		Subject:    subject,
		Image:      image,
	}

	id, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	faculty.ID = id
	s.logger.Info().Int64("facultyID", id).Str("department", department).Msg("Faculty created")
	return faculty, nil
}

// GetByID retrieves a faculty member by ID
func (s *facultyServiceImpl) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	return s.facultyRepo.GetByID(ctx, id)
}

// GetAll retrieves all faculty members sorted by name
func (s *facultyServiceImpl) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

// GetByDepartment retrieves the faculty members of one department
// sorted by name
func (s *facultyServiceImpl) GetByDepartment(ctx context.Context, department string) ([]*models.Faculty, error) {
	if strings.TrimSpace(department) == "" {
		return nil, fmt.Errorf("%w: department cannot be empty", apperrors.ErrValidationFailed)
	}

	faculty, err := s.facultyRepo.GetByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty by department: %w", err)
	}
	return faculty, nil
}

// Update modifies an existing faculty member. When newImage is nil the
// stored image reference is preserved unchanged; when a replacement is
// supplied the previous image file is removed before the new reference
// is committed.
func (s *facultyServiceImpl) Update(ctx context.Context, id int64, name, department, subject string, newImage *string) (*models.Faculty, error) {
	if err := s.validateFields(name, department, subject); err != nil {
		return nil, err
	}

	existing, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image := existing.Image
	if newImage != nil {
		if existing.Image != nil {
			if err := s.images.DeleteFile(*existing.Image); err != nil {
				s.logger.Warn().Err(err).Str("image", *existing.Image).Msg("Failed to remove replaced faculty image")
			}
		}
		image = newImage
	}

	faculty := &models.Faculty{
		ID:         id,
		Name:       name,
		Department: department,
		Subject:    subject,
		Image:      image,
		CreatedAt:  existing.CreatedAt,
	}

	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("facultyID", id).Msg("Faculty updated")
	return faculty, nil
}

// Delete removes a faculty member and cascades to all of its feedback.
// The image file is released only after the database delete committed,
// so a failed delete leaves the record, its feedback and its photo
// untouched.
func (s *facultyServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.facultyRepo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Image != nil {
		if err := s.images.DeleteFile(*existing.Image); err != nil {
			s.logger.Warn().Err(err).Str("image", *existing.Image).Msg("Failed to remove image of deleted faculty")
		}
	}

	s.logger.Info().Int64("facultyID", id).Msg("Faculty deleted with associated feedback")
	return nil
}
