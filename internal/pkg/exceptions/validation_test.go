package exceptions

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=2"`
}

func TestFormatValidationErrors(t *testing.T) {
	validate := validator.New()

	t.Run("First error drives the client message", func(t *testing.T) {
		err := validate.Struct(&sampleInput{Email: "not-an-email", Name: "ok"})

		assert.Equal(t, "email must be a valid email", FormatFirstValidationError(err))
	})

	t.Run("All violations are listed", func(t *testing.T) {
		err := validate.Struct(&sampleInput{})

		formatted := FormatAllValidationErrors(err)
		assert.Contains(t, formatted, "email is required")
		assert.Contains(t, formatted, "name is required")
	})

	t.Run("Dev message carries every violation", func(t *testing.T) {
		err := validate.Struct(&sampleInput{Email: "valid@example.com", Name: "x"})

		customErr := ErrInputValidation(err)
		assert.Equal(t, "name must be at least 2 characters long", customErr.ClientMessage)
		assert.Contains(t, customErr.DevMessage, "name must be at least 2 characters long")
	})

	t.Run("Nil error falls back to generic message", func(t *testing.T) {
		assert.NotEmpty(t, FormatAllValidationErrors(nil))
	})
}
