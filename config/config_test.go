package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "EMAIL_USER", "EMAIL_PASS", "CONTACT_EMAIL_TO", "OWNER_NAME",
		"MAIL_PROVIDER", "SMTP_HOST", "SMTP_PORT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "smtp", cfg.MailProvider)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.ContactEmailTo)
}

func TestLoadConfigOwnerFallsBackToEmailUser(t *testing.T) {
	t.Setenv("EMAIL_USER", "owner@example.com")
	t.Setenv("CONTACT_EMAIL_TO", "")
	t.Setenv("OWNER_NAME", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", cfg.ContactEmailTo)
	assert.Equal(t, "owner@example.com", cfg.OwnerName)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("EMAIL_USER", "sender@example.com")
	t.Setenv("CONTACT_EMAIL_TO", "inbox@example.com")
	t.Setenv("MAIL_PROVIDER", "SES")
	t.Setenv("SMTP_PORT", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "inbox@example.com", cfg.ContactEmailTo)
	assert.Equal(t, "ses", cfg.MailProvider)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}
