package domain

import "context"

// ContactRequest represents a contact form submission. It binds from either
// form-encoded or JSON bodies.
type ContactRequest struct {
	Name    string `form:"name" json:"name" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Subject string `form:"subject" json:"subject" validate:"required"`
	Message string `form:"message" json:"message" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission, notifies the owner and
	// then sends the submitter a confirmation.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
