package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestFieldsFailingUsesJSONNames(t *testing.T) {
	err := New().Struct(sample{})

	assert.Equal(t, []string{"name", "email"}, FieldsFailing(err, "required"))
	assert.Empty(t, FieldsFailing(err, "email"))
}

func TestFieldsFailingEmail(t *testing.T) {
	err := New().Struct(sample{Name: "Ana", Email: "not-an-email"})

	assert.Empty(t, FieldsFailing(err, "required"))
	assert.Equal(t, []string{"email"}, FieldsFailing(err, "email"))
}

func TestFormatValidationErrors(t *testing.T) {
	err := New().Struct(sample{Email: "nope"})

	assert.Equal(t, []string{
		"name: is required",
		"email: is not a valid email address",
	}, FormatValidationErrors(err))

	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
	assert.Nil(t, FieldsFailing(errors.New("boom"), "required"))
}
