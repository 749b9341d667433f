package dto

// SendEmailRequest is an ad hoc outgoing email.
type SendEmailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

// TestEmailRequest sends a canned test message to one recipient.
type TestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// SendEmailResponse reports a delivered message and, in sandbox mode,
// a preview reference for inspecting the rendered mail.
type SendEmailResponse struct {
	Message string `json:"message" example:"Email sent"`
	Preview string `json:"preview,omitempty"`
}

// MailerStatusResponse introspects the configured notification sender.
type MailerStatusResponse struct {
	Mode       string `json:"mode" example:"sandbox" enums:"none,smtp,sandbox"`
	Configured bool   `json:"configured" example:"true"`
}
