package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "filter_value":
		return fmt.Sprintf("%s: must be printable text of at most %d bytes", field, MaxFilterValueLen)
	case "max":
		return fmt.Sprintf("%s: must be at most %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s: failed validation (%s)", field, e.Tag())
	}
}
