package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contact-relay/config"
)

const (
	ProviderSMTP = "smtp"
	ProviderSES  = "ses"
)

// ErrNotConfigured is returned by a mailer that lacks credentials.
var ErrNotConfigured = errors.New("email service is not configured")

// Mailer delivers a single message. Implementations must honor ctx.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// NewMailer builds the mailer selected by cfg.MailProvider
func NewMailer(ctx context.Context, cfg *config.Config) (Mailer, error) {
	switch cfg.MailProvider {
	case "", ProviderSMTP:
		return NewSMTPMailer(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			Timeout:  time.Duration(cfg.MailTimeoutSeconds) * time.Second,
		}), nil
	case ProviderSES:
		return NewSESMailer(ctx, cfg.AWSRegion)
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}

// IdentityFromConfig returns the fixed addresses used for every submission
func IdentityFromConfig(cfg *config.Config) Identity {
	return Identity{
		Sender:    cfg.EmailUser,
		Owner:     cfg.ContactEmailTo,
		Signature: cfg.OwnerName,
	}
}
