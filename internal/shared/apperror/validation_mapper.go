package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError is a single field-level validation failure returned to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// formatFieldName turns a json tag name into a human readable label
// (fullName -> Full Name, employee_id -> Employee Id).
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(b.String(), "_", " "))
}

// MapValidationError converts a binding error into field-level details
// suitable for a 400 response body. Field names come from the json tags
// registered in Init.
func MapValidationError(err error) any {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return "Invalid request body"
	}

	details := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		field := e.Field()
		label := formatFieldName(field)

		var msg string
		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", label)
		case "email":
			msg = "Invalid email address"
		case "uuid":
			msg = fmt.Sprintf("Invalid %s", label)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
		default:
			msg = fmt.Sprintf("%s is invalid", label)
		}

		details = append(details, FieldError{Field: field, Message: msg})
	}

	return details
}
