package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
	"github.com/campusrate/campusrate/internal/pkg/auth"
	"github.com/campusrate/campusrate/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.UserProfile, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Profile(ctx context.Context, userID int64, role string) (*dto.UserProfile, error)
}

// AdminCredentials is the configured administrator principal. It is
// checked in constant time and never stored alongside students.
type AdminCredentials struct {
	Email    string
	Password string
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	studentRepo StudentRepository
	jwtService  *auth.JWTService
	admin       AdminCredentials
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(studentRepo StudentRepository, jwtService *auth.JWTService, admin AdminCredentials, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		studentRepo: studentRepo,
		jwtService:  jwtService,
		admin:       admin,
		logger:      logger,
	}
}

// validateRegistration validates signup fields before any persistence attempt
func (s *authServiceImpl) validateRegistration(req *dto.RegisterStudentRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(req.Department) == "" {
		return fmt.Errorf("%w: department cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.CompiledPatterns.Email.MatchString(strings.ToLower(req.Email)) {
		return apperrors.ErrInvalidEmail
	}

	if len(req.Password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}

	return nil
}

// Register creates a new student account. A duplicate email surfaces
// as a conflict and leaves the existing record untouched.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.UserProfile, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:       req.Name,
		Email:      strings.ToLower(req.Email),
		Password:   hashed,
		Department: req.Department,
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", id).Str("department", student.Department).Msg("Student registered")

	return &dto.UserProfile{
		ID:         id,
		Name:       student.Name,
		Email:      student.Email,
		RoleType:   string(models.RoleStudent),
		Department: student.Department,
	}, nil
}

// Login authenticates a student or the administrator. Every failure
// collapses to the same invalid-credentials error so callers cannot
// distinguish a wrong password from an unknown email.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	email := strings.ToLower(req.Email)

	// Administrator check runs first and compares both fields before
	// branching, keeping the comparison constant time.
	emailMatch := auth.ConstantTimeEquals(email, strings.ToLower(s.admin.Email))
	passwordMatch := auth.ConstantTimeEquals(req.Password, s.admin.Password)
	if emailMatch && passwordMatch {
		return s.issueToken(models.AdminUserID, s.admin.Email, "Admin", models.RoleAdmin, "")
	}

	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(student.ID, student.Email, student.Name, models.RoleStudent, student.Department)
}

func (s *authServiceImpl) issueToken(userID int64, email, name string, role models.RoleType, department string) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(userID, email, name, string(role), department)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Str("role", string(role)).Msg("Login successful")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User: &dto.UserProfile{
			ID:         userID,
			Name:       name,
			Email:      email,
			RoleType:   string(role),
			Department: department,
		},
	}, nil
}

// Profile returns the identity of the authenticated caller
func (s *authServiceImpl) Profile(ctx context.Context, userID int64, role string) (*dto.UserProfile, error) {
	if role == string(models.RoleAdmin) {
		return &dto.UserProfile{
			ID:       models.AdminUserID,
			Name:     "Admin",
			Email:    s.admin.Email,
			RoleType: string(models.RoleAdmin),
		}, nil
	}

	student, err := s.studentRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfile{
		ID:         student.ID,
		Name:       student.Name,
		Email:      student.Email,
		RoleType:   string(models.RoleStudent),
		Department: student.Department,
	}, nil
}
