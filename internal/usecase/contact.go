package usecase

import (
	"context"
	"strings"

	"contact-relay/internal/domain"
	"contact-relay/pkg/email"
	"contact-relay/pkg/logger"
	"contact-relay/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	mailer   email.Mailer
	identity email.Identity
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer email.Mailer, identity email.Identity, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		identity: identity,
		validate: validate,
	}
}

// SendContactMessage validates the submission, then sends the owner
// notification followed by the submitter confirmation. The confirmation is
// only attempted once the notification has been accepted.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	// The email is checked exactly as submitted; trimming only decides
	// whether it is blank.
	sub := domain.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if strings.TrimSpace(sub.Email) == "" {
		sub.Email = ""
	}

	if err := uc.validateSubmission(&sub); err != nil {
		logger.Log.Warn("Contact submission rejected", "error", err)
		return err
	}

	data := email.ContactEmailData{
		SenderName:  sub.Name,
		SenderEmail: sub.Email,
		Subject:     sub.Subject,
		Message:     sub.Message,
	}

	if err := uc.mailer.Send(ctx, email.NewNotification(uc.identity, data)); err != nil {
		logger.Log.Error("Failed to send notification email", "error", err)
		return &domain.DeliveryError{Stage: domain.StageNotification, Err: err}
	}

	// Past this point the owner already has the notification; a failed
	// confirmation is reported but nothing is rolled back.
	if err := uc.mailer.Send(ctx, email.NewConfirmation(uc.identity, data)); err != nil {
		logger.Log.Error("Failed to send confirmation email", "error", err, "recipient", sub.Email)
		return &domain.DeliveryError{Stage: domain.StageConfirmation, Err: err}
	}

	logger.Log.Info("Contact submission relayed", "recipient", sub.Email)
	return nil
}

// validateSubmission reports missing fields before a malformed email
func (uc *contactUsecase) validateSubmission(sub *domain.ContactRequest) error {
	err := uc.validate.Struct(sub)
	if err == nil {
		return nil
	}

	if missing := validation.FieldsFailing(err, "required"); len(missing) > 0 {
		return &domain.ValidationError{Reason: domain.ReasonMissingField, Fields: missing}
	}
	if invalid := validation.FieldsFailing(err, "email"); len(invalid) > 0 {
		return &domain.ValidationError{Reason: domain.ReasonInvalidEmail}
	}
	return &domain.ValidationError{Reason: strings.Join(validation.FormatValidationErrors(err), "; ")}
}
