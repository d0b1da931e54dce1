package email

import (
	"context"
	"testing"

	"contact-relay/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailerDefaultsToSMTP(t *testing.T) {
	m, err := NewMailer(context.Background(), &config.Config{
		SMTPHost:  "smtp.example.com",
		SMTPPort:  587,
		EmailUser: "site@example.com",
		EmailPass: "secret",
	})
	require.NoError(t, err)

	smtpMailer, ok := m.(*SMTPMailer)
	require.True(t, ok)
	assert.True(t, smtpMailer.IsConfigured())
}

func TestNewMailerUnknownProvider(t *testing.T) {
	_, err := NewMailer(context.Background(), &config.Config{MailProvider: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unknown mail provider")
}

func TestIdentityFromConfig(t *testing.T) {
	id := IdentityFromConfig(&config.Config{
		EmailUser:      "site@example.com",
		ContactEmailTo: "owner@example.com",
		OwnerName:      "Site Owner",
	})
	assert.Equal(t, Identity{Sender: "site@example.com", Owner: "owner@example.com", Signature: "Site Owner"}, id)
}

func TestNewMailerSES(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	m, err := NewMailer(context.Background(), &config.Config{
		MailProvider: ProviderSES,
		AWSRegion:    "eu-west-1",
	})
	require.NoError(t, err)

	sesMailer, ok := m.(*SESMailer)
	require.True(t, ok)
	assert.NotNil(t, sesMailer.client)
}
