package domain

import (
	"fmt"
	"strings"
)

const (
	ReasonMissingField = "missing field"
	ReasonInvalidEmail = "invalid email"

	StageNotification = "notification"
	StageConfirmation = "confirmation"
)

// ValidationError is returned when a submission is rejected before any
// message is sent.
type ValidationError struct {
	Reason string
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

// DeliveryError is returned when the mail provider fails to deliver one of
// the two messages. A failed confirmation leaves the notification sent.
type DeliveryError struct {
	Stage string
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
