package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testIdentity = Identity{
	Sender:    "site@example.com",
	Owner:     "owner@example.com",
	Signature: "Site Owner",
}

var testData = ContactEmailData{
	SenderName:  "Ana",
	SenderEmail: "ana@example.com",
	Subject:     "Hi",
	Message:     "Hello there",
}

func TestNewNotification(t *testing.T) {
	msg := NewNotification(testIdentity, testData)

	assert.Equal(t, KindNotification, msg.Kind)
	assert.Equal(t, "site@example.com", msg.From)
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "ana@example.com", msg.ReplyTo)
	assert.Equal(t, "Hi", msg.Subject)
	assert.Contains(t, msg.Body, "Name: Ana")
	assert.Contains(t, msg.Body, "Email: ana@example.com")
	assert.Contains(t, msg.Body, "Subject: Hi")
	assert.Contains(t, msg.Body, "Message: Hello there")
}

func TestNewConfirmation(t *testing.T) {
	msg := NewConfirmation(testIdentity, testData)

	assert.Equal(t, KindConfirmation, msg.Kind)
	assert.Equal(t, "site@example.com", msg.From)
	assert.Equal(t, "ana@example.com", msg.To)
	assert.Empty(t, msg.ReplyTo)
	assert.Equal(t, "Confirmation of receipt", msg.Subject)
	assert.Contains(t, msg.Body, "Hello Ana,")
	assert.Contains(t, msg.Body, `"Hello there"`)
	assert.Contains(t, msg.Body, "Regards,\nSite Owner")
}

func TestNewConfirmationSignatureFallback(t *testing.T) {
	id := testIdentity
	id.Signature = ""

	msg := NewConfirmation(id, testData)
	assert.Contains(t, msg.Body, "Regards,\nsite@example.com")
}
