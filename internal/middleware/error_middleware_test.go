package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfrancisco/idlink-backend/internal/app/models/dto"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/apperrors"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/mailer"
)

func respondWith(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	HandleAPIError(ctx, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantCode   dto.ErrorCode
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, "User not found", dto.ErrorCodeResourceNotFound},
		{"application not found", apperrors.ErrApplicationNotFound, http.StatusNotFound, "Application not found", dto.ErrorCodeResourceNotFound},
		{"duplicate user", apperrors.ErrDuplicateUser, http.StatusBadRequest, "Email or ID already exists", dto.ErrorCodeResourceAlreadyExists},
		{"wrong password", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect password", dto.ErrorCodeInvalidCredentials},
		{"mailer unavailable", mailer.ErrNotConfigured, http.StatusInternalServerError, "Mail transporter not configured", dto.ErrorCodeExternalServiceError},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error", dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respondWith(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestHandleAPIErrorValidationKeepsDetail(t *testing.T) {
	err := apperrors.ErrInvalidStatus
	status, body := respondWith(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Code)
	assert.Contains(t, body.Message, "invalid status")
}

func TestHandleAPIErrorWrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("query failed"), apperrors.ErrApplicationNotFound)
	status, _ := respondWith(t, wrapped)
	assert.Equal(t, http.StatusNotFound, status)
}
