package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfrancisco/idlink-backend/internal/app/models"
	"github.com/jmfrancisco/idlink-backend/internal/app/models/dto"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/apperrors"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/auth"
)

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		IDNo:     "2021-001",
		FullName: "Juan Dela Cruz",
		Email:    "Juan@School.edu",
		Password: "secret123",
		Role:     "student",
	}
}

func TestRegisterSuccess(t *testing.T) {
	userRepo := &stubUserRepo{}
	svc := NewAuthService(userRepo, zerolog.Nop())

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "Registration successful", resp.Message)
	assert.Equal(t, "Juan Dela Cruz", resp.FullName)
	assert.Equal(t, "student", resp.Role)
	assert.Equal(t, "juan@school.edu", resp.Email)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, zerolog.Nop())

	req := validRegisterRequest()
	req.Role = "admin"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestRegisterDuplicateUser(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{createErr: apperrors.ErrDuplicateUser}, zerolog.Nop())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)
}

func TestLoginSuccess(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	userRepo := &stubUserRepo{user: &models.User{
		ID:       1,
		IDNo:     "2021-001",
		FullName: "Juan Dela Cruz",
		Email:    "juan@school.edu",
		Password: hashed,
		Role:     models.RoleStudent,
	}}
	svc := NewAuthService(userRepo, zerolog.Nop())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "juan@school.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "student", resp.Role)
	assert.Equal(t, "2021-001", resp.IDNo)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	userRepo := &stubUserRepo{user: &models.User{
		Email:    "juan@school.edu",
		Password: hashed,
		Role:     models.RoleStudent,
	}}
	svc := NewAuthService(userRepo, zerolog.Nop())

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "juan@school.edu",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, zerolog.Nop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@school.edu",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
