package mailer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned by Send when no transport is available.
var ErrNotConfigured = errors.New("mail transporter not configured")

// Mode identifies how outgoing mail is handled.
type Mode string

const (
	// ModeDisabled means no transport is configured; sends fail fast.
	ModeDisabled Mode = "none"
	// ModeSMTP delivers through a real SMTP server.
	ModeSMTP Mode = "smtp"
	// ModeSandbox renders messages to the log instead of delivering them.
	// Used in non-production setups without SMTP credentials.
	ModeSandbox Mode = "sandbox"
)

// Config holds SMTP transport settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseSSL    bool
}

// Result describes the outcome of a successful send.
type Result struct {
	// Preview is an inspectable reference to the rendered message,
	// populated in sandbox mode.
	Preview string `json:"preview,omitempty"`
}

// Mailer sends notification emails.
type Mailer interface {
	Mode() Mode
	Configured() bool
	Send(to, subject, body string) (*Result, error)
}

// New selects a mailer from the configuration: SMTP when host and
// credentials are present, sandbox in non-production setups, disabled
// otherwise. The choice is fixed at construction time.
func New(cfg Config, production bool, lgr zerolog.Logger) Mailer {
	if cfg.Host != "" && cfg.Username != "" && cfg.Password != "" {
		lgr.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("Mail transporter configured (smtp)")
		return &smtpMailer{cfg: cfg, logger: lgr}
	}
	if !production {
		lgr.Warn().Msg("SMTP not configured, using sandbox mailer: messages are logged, not delivered")
		return &sandboxMailer{from: cfg.FromEmail, logger: lgr}
	}
	lgr.Warn().Msg("Mail transporter not configured. Set SMTP host, username and password to enable email notifications.")
	return &disabledMailer{}
}

type smtpMailer struct {
	cfg    Config
	logger zerolog.Logger
}

func (m *smtpMailer) Mode() Mode       { return ModeSMTP }
func (m *smtpMailer) Configured() bool { return true }

func (m *smtpMailer) Send(to, subject, body string) (*Result, error) {
	msg := gomail.NewMessage()
	from := m.cfg.FromEmail
	if from == "" {
		from = m.cfg.Username
	}
	if m.cfg.FromName != "" {
		msg.SetHeader("From", msg.FormatAddress(from, m.cfg.FromName))
	} else {
		msg.SetHeader("From", from)
	}
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	dialer.SSL = m.cfg.UseSSL

	if err := dialer.DialAndSend(msg); err != nil {
		m.logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send email")
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info().Str("to", to).Str("subject", subject).Msg("Notification email sent")
	return &Result{}, nil
}

type sandboxMailer struct {
	from   string
	logger zerolog.Logger
}

func (m *sandboxMailer) Mode() Mode       { return ModeSandbox }
func (m *sandboxMailer) Configured() bool { return true }

func (m *sandboxMailer) Send(to, subject, body string) (*Result, error) {
	ref := "sandbox://messages/" + uuid.New().String()
	m.logger.Info().
		Str("to", to).
		Str("from", m.from).
		Str("subject", subject).
		Str("body", body).
		Str("preview", ref).
		Msg("Sandbox mail rendered")
	return &Result{Preview: ref}, nil
}

type disabledMailer struct{}

func (m *disabledMailer) Mode() Mode       { return ModeDisabled }
func (m *disabledMailer) Configured() bool { return false }

func (m *disabledMailer) Send(to, subject, body string) (*Result, error) {
	return nil, ErrNotConfigured
}
