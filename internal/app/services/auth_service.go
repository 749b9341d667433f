package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jmfrancisco/idlink-backend/internal/app/models"
	"github.com/jmfrancisco/idlink-backend/internal/app/models/dto"
	"github.com/jmfrancisco/idlink-backend/internal/app/repositories"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/apperrors"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/auth"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/validation"
)

// AuthService defines registration and login operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.IUserRepository, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// validateRegistration validates registration data before touching the store.
func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.IDNo) == "" {
		return fmt.Errorf("%w: idno cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: fullname cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.CompiledPatterns.Email.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email address", apperrors.ErrValidationFailed)
	}
	if !models.RoleType(req.Role).Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, req.Role)
	}
	return nil
}

// Register creates a new user with a hashed credential. The plaintext
// password is never persisted or logged.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		IDNo:     strings.TrimSpace(req.IDNo),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     models.RoleType(req.Role),
		Course:   req.Course,
		Year:     req.Year,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userID", id).
		Str("idno", user.IDNo).
		Str("role", string(user.Role)).
		Msg("User registered")

	return &dto.RegisterResponse{
		Message:  "Registration successful",
		FullName: user.FullName,
		Role:     string(user.Role),
		IDNo:     user.IDNo,
		Email:    user.Email,
	}, nil
}

// Login verifies credentials against the stored hash. A missing user
// and a wrong password are distinct failures, matching the separate
// 404 and 401 responses of the HTTP surface.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("email", user.Email).Msg("Login attempt with incorrect password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		Message:  "Login successful",
		Role:     string(user.Role),
		FullName: user.FullName,
		IDNo:     user.IDNo,
	}, nil
}
