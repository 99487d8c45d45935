package apperror

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts a validator error chain into a client-facing
// AppError, collecting one detail line per failed field.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := make([]string, 0, len(errs))
		for _, e := range errs {
			field := formatFieldName(e.Field())
			switch e.Tag() {
			case "required":
				details = append(details, field+" is required")
			case "email":
				details = append(details, field+" is not a valid email address")
			default:
				details = append(details, field+" is invalid")
			}
		}
		return ErrMissingFields.WithDetails(details...)
	}

	return ErrInvalidInput
}
