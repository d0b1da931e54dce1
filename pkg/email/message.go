package email

import "fmt"

const (
	KindNotification = "notification"
	KindConfirmation = "confirmation"

	confirmationSubject = "Confirmation of receipt"
)

// Message is a single plain text email
type Message struct {
	Kind    string
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Identity holds the configured addresses shared by every submission
type Identity struct {
	Sender    string
	Owner     string
	Signature string
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// NewNotification builds the message sent to the owner. Replies go straight
// to the submitter.
func NewNotification(id Identity, data ContactEmailData) *Message {
	return &Message{
		Kind:    KindNotification,
		From:    id.Sender,
		To:      id.Owner,
		ReplyTo: data.SenderEmail,
		Subject: data.Subject,
		Body: fmt.Sprintf(
			"Name: %s\n\nEmail: %s\n\nSubject: %s\n\nMessage: %s",
			data.SenderName, data.SenderEmail, data.Subject, data.Message,
		),
	}
}

// NewConfirmation builds the acknowledgment sent back to the submitter
func NewConfirmation(id Identity, data ContactEmailData) *Message {
	signature := id.Signature
	if signature == "" {
		signature = id.Sender
	}
	return &Message{
		Kind:    KindConfirmation,
		From:    id.Sender,
		To:      data.SenderEmail,
		Subject: confirmationSubject,
		Body: fmt.Sprintf(
			"Hello %s,\n\nI have received your message:\n\n\"%s\"\n\nI will get in touch with you soon.\n\nRegards,\n%s",
			data.SenderName, data.Message, signature,
		),
	}
}
