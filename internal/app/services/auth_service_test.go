package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
	"github.com/campusrate/campusrate/internal/pkg/auth"
)

func newAuthService(studentRepo *MockStudentRepository) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campusrate-test",
	})
	admin := AdminCredentials{Email: "admin@campusrate.local", Password: "admin123"}
	return NewAuthService(studentRepo, jwtService, admin, zerolog.Nop())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a student with the student role", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		studentRepo.On("Create", ctx, mock.AnythingOfType("*models.Student")).Return(int64(7), nil)

		profile, err := svc.Register(ctx, &dto.RegisterStudentRequest{
			Name:       "Jane Doe",
			Email:      "Jane@College.edu",
			Password:   "secret123",
			Department: "Computer Science",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), profile.ID)
		assert.Equal(t, string(models.RoleStudent), profile.RoleType)
		// email is normalized to lower case before persistence
		assert.Equal(t, "jane@college.edu", profile.Email)

		created := studentRepo.Calls[0].Arguments.Get(1).(*models.Student)
		assert.NotEqual(t, "secret123", created.Password)
		assert.True(t, auth.CheckPassword(created.Password, "secret123"))
	})

	t.Run("surfaces a duplicate email as a conflict", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		studentRepo.On("Create", ctx, mock.AnythingOfType("*models.Student")).Return(int64(0), apperrors.ErrEmailAlreadyExists)

		_, err := svc.Register(ctx, &dto.RegisterStudentRequest{
			Name:       "Jane Doe",
			Email:      "jane@college.edu",
			Password:   "secret123",
			Department: "Computer Science",
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		_, err := svc.Register(ctx, &dto.RegisterStudentRequest{
			Name:       "Jane Doe",
			Email:      "jane@college.edu",
			Password:   "short",
			Department: "Computer Science",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
		studentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		_, err := svc.Register(ctx, &dto.RegisterStudentRequest{
			Name:       "Jane Doe",
			Email:      "not-an-email",
			Password:   "secret123",
			Department: "Computer Science",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashed, err := auth.HashPassword("secret123")
	assert.NoError(t, err)

	student := &models.Student{
		ID:         7,
		Name:       "Jane Doe",
		Email:      "jane@college.edu",
		Password:   hashed,
		Department: "Computer Science",
	}

	t.Run("authenticates a student", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		studentRepo.On("GetByEmail", ctx, "jane@college.edu").Return(student, nil)

		token, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@college.edu", Password: "secret123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.Equal(t, string(models.RoleStudent), token.User.RoleType)
		assert.Equal(t, int64(7), token.User.ID)
	})

	t.Run("authenticates the configured administrator", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		token, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@campusrate.local", Password: "admin123"})

		assert.NoError(t, err)
		assert.Equal(t, string(models.RoleAdmin), token.User.RoleType)
		assert.Equal(t, models.AdminUserID, token.User.ID)
		// the admin never touches the students table
		studentRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		studentRepo.On("GetByEmail", ctx, "jane@college.edu").Return(student, nil)
		studentRepo.On("GetByEmail", ctx, "nobody@college.edu").Return(nil, apperrors.ErrStudentNotFound)

		_, wrongPassword := svc.Login(ctx, &dto.LoginRequest{Email: "jane@college.edu", Password: "wrong"})
		_, unknownEmail := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@college.edu", Password: "secret123"})

		assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})

	t.Run("rejects empty credentials", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "", Password: ""})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the student profile", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		studentRepo.On("GetByID", ctx, int64(7)).Return(&models.Student{
			ID: 7, Name: "Jane Doe", Email: "jane@college.edu", Department: "Computer Science",
		}, nil)

		profile, err := svc.Profile(ctx, 7, string(models.RoleStudent))

		assert.NoError(t, err)
		assert.Equal(t, "Computer Science", profile.Department)
		assert.Equal(t, string(models.RoleStudent), profile.RoleType)
	})

	t.Run("returns the synthetic admin profile", func(t *testing.T) {
		studentRepo := new(MockStudentRepository)
		svc := newAuthService(studentRepo)

		profile, err := svc.Profile(ctx, models.AdminUserID, string(models.RoleAdmin))

		assert.NoError(t, err)
		assert.Equal(t, models.AdminUserID, profile.ID)
		assert.Equal(t, string(models.RoleAdmin), profile.RoleType)
		studentRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
