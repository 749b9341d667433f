package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jmfrancisco/idlink-backend/internal/app/models/dto"
	"github.com/jmfrancisco/idlink-backend/internal/middleware"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/mailer"
)

// MailController exposes the outgoing mail utility endpoints.
type MailController struct {
	mail   mailer.Mailer
	logger zerolog.Logger
}

// NewMailController creates a new MailController
func NewMailController(mail mailer.Mailer, logger zerolog.Logger) *MailController {
	return &MailController{
		mail:   mail,
		logger: logger,
	}
}

// SendEmail sends an ad hoc email
// @Summary Send an email
// @Description Sends an arbitrary plain-text email through the configured transporter.
// @Tags mail
// @Accept json
// @Produce json
// @Param request body dto.SendEmailRequest true "Email to send"
// @Success 200 {object} dto.SendEmailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 500 {object} dto.ErrorResponse "Mail transporter not configured"
// @Router /send-email [post]
func (c *MailController) SendEmail(ctx *gin.Context) {
	var req dto.SendEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "to, subject and text are required"))
		return
	}

	result, err := c.mail.Send(req.To, req.Subject, req.Text)
	if err != nil {
		c.logger.Error().Err(err).Str("to", req.To).Msg("Failed to send email")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SendEmailResponse{
		Message: "Email sent",
		Preview: result.Preview,
	})
}

// TestEmail sends a canned test message
// @Summary Send a test email
// @Description Sends a fixed test message to verify the mail transporter configuration.
// @Tags mail
// @Accept json
// @Produce json
// @Param request body dto.TestEmailRequest true "Recipient"
// @Success 200 {object} dto.SendEmailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 500 {object} dto.ErrorResponse "Mail transporter not configured"
// @Router /test-email [post]
func (c *MailController) TestEmail(ctx *gin.Context) {
	var req dto.TestEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "to is required"))
		return
	}

	result, err := c.mail.Send(req.To, "IDLink Test Email", "This is a test email from IDLink. If you received this, the mail transporter is working.")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SendEmailResponse{
		Message: "Test email sent",
		Preview: result.Preview,
	})
}

// MailerStatus reports the active mail mode
// @Summary Mailer status
// @Description Reports which transporter mode is active and whether email can be sent.
// @Tags mail
// @Produce json
// @Success 200 {object} dto.MailerStatusResponse
// @Router /mailer-status [get]
func (c *MailController) MailerStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MailerStatusResponse{
		Mode:       string(c.mail.Mode()),
		Configured: c.mail.Configured(),
	})
}
