package controllers

import (
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
	"github.com/jmfrancisco/idlink-backend/internal/pkg/mailer"
)

func newMailRouter(mail mailer.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewMailController(mail, zerolog.Nop())

	router := gin.New()
	api := router.Group("/api")
	api.POST("/send-email", controller.SendEmail)
	api.POST("/test-email", controller.TestEmail)
	api.GET("/mailer-status", controller.MailerStatus)
	return router
}

func TestSendEmailSandbox(t *testing.T) {
	mail := mailer.New(mailer.Config{}, false, zerolog.Nop())
	router := newMailRouter(mail)

	payload := `{"to":"juan@school.edu","subject":"Hello","text":"World"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SendEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Email sent", got.Message)
	assert.True(t, strings.HasPrefix(got.Preview, "sandbox://messages/"))
}

func TestSendEmailNoTransporter(t *testing.T) {
	// Production with no SMTP settings gets the disabled mailer.
	mail := mailer.New(mailer.Config{}, true, zerolog.Nop())
	router := newMailRouter(mail)

	payload := `{"to":"juan@school.edu","subject":"Hello","text":"World"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Mail transporter not configured", got.Message)
}

func TestSendEmailValidation(t *testing.T) {
	mail := mailer.New(mailer.Config{}, false, zerolog.Nop())
	router := newMailRouter(mail)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(`{"to":"juan@school.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMailerStatus(t *testing.T) {
	mail := mailer.New(mailer.Config{}, false, zerolog.Nop())
	router := newMailRouter(mail)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/mailer-status", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.MailerStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "sandbox", got.Mode)
	assert.True(t, got.Configured)
}
