package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmfrancisco/idlink-backend/internal/app/models/dto"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/apperrors"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/logger"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/mailer"
)

// HandleAPIError maps service-layer errors onto HTTP responses.
// Controllers delegate every non-binding error here so that an error's
// status and payload are decided in exactly one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "User not found"))
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Application not found"))
	case errors.Is(err, apperrors.ErrDuplicateUser):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, "Email or ID already exists"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Incorrect password"))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrInvalidRole, apperrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))
	case errors.Is(err, mailer.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeExternalServiceError, "Mail transporter not configured"))
	default:
		logger.Error().Err(err).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
