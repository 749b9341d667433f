package mailer

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsSMTPWhenCredentialsPresent(t *testing.T) {
	m := New(Config{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p"}, true, zerolog.Nop())

	assert.Equal(t, ModeSMTP, m.Mode())
	assert.True(t, m.Configured())
}

func TestNewSelectsSandboxInDevelopment(t *testing.T) {
	m := New(Config{}, false, zerolog.Nop())

	assert.Equal(t, ModeSandbox, m.Mode())
	assert.True(t, m.Configured())
}

func TestNewSelectsDisabledInProductionWithoutSMTP(t *testing.T) {
	m := New(Config{}, true, zerolog.Nop())

	assert.Equal(t, ModeDisabled, m.Mode())
	assert.False(t, m.Configured())
}

func TestSandboxSendReturnsPreviewReference(t *testing.T) {
	m := New(Config{FromEmail: "noreply@idlink.local"}, false, zerolog.Nop())

	res, err := m.Send("user@example.com", "Application Update", "Hello")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, strings.HasPrefix(res.Preview, "sandbox://messages/"))
}

func TestDisabledSendFailsFast(t *testing.T) {
	m := New(Config{}, true, zerolog.Nop())

	res, err := m.Send("user@example.com", "subject", "body")
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, res)
}
