package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfrancisco/idlink-backend/internal/app/models/dto"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/apperrors"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
}

func (s *stubAuthService) Register(_ context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &dto.RegisterResponse{
		Message:  "Registration successful",
		FullName: req.FullName,
		Role:     req.Role,
		IDNo:     req.IDNo,
		Email:    req.Email,
	}, nil
}

func (s *stubAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.LoginResponse{Message: "Login successful", Role: "student", FullName: "Juan Dela Cruz", IDNo: "2021-001"}, nil
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(svc, zerolog.Nop())

	router := gin.New()
	api := router.Group("/api")
	api.POST("/register", controller.Register)
	api.POST("/login", controller.Login)
	return router
}

func TestRegisterEndpoint(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	payload := `{"idno":"2021-001","fullname":"Juan Dela Cruz","email":"juan@school.edu","password":"secret123","role":"student"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	// Successful registration responds 200 with the profile echo, not 201.
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Registration successful", got.Message)
	assert.Equal(t, "2021-001", got.IDNo)
}

func TestRegisterDuplicate(t *testing.T) {
	router := newAuthRouter(&stubAuthService{registerErr: apperrors.ErrDuplicateUser})

	payload := `{"idno":"2021-001","fullname":"Juan Dela Cruz","email":"juan@school.edu","password":"secret123","role":"student"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Email or ID already exists", got.Message)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, got.Code)
}

func TestRegisterAcceptsShortPassword(t *testing.T) {
	// Any non-empty password is accepted; only missing fields fail.
	router := newAuthRouter(&stubAuthService{})

	payload := `{"idno":"2021-002","fullname":"Maria Santos","email":"maria@school.edu","password":"abc","role":"student"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterInvalidPayload(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"email":"juan@school.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	payload := `{"email":"juan@school.edu","password":"secret123"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Login successful", got.Message)
}

func TestLoginWrongPasswordEndpoint(t *testing.T) {
	router := newAuthRouter(&stubAuthService{loginErr: apperrors.ErrInvalidCredentials})

	payload := `{"email":"juan@school.edu","password":"wrong"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Incorrect password", got.Message)
}

func TestLoginUnknownUserEndpoint(t *testing.T) {
	router := newAuthRouter(&stubAuthService{loginErr: apperrors.ErrUserNotFound})

	payload := `{"email":"ghost@school.edu","password":"secret123"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
