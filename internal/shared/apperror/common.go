package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Request failed",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusUnprocessableEntity,
	)

	ErrMissingFields = New(
		CodeInvalidInput,
		"You have missing required fields",
		http.StatusUnprocessableEntity,
	)
)

// RequiredField builds the validation error for one absent field.
func RequiredField(field string) *AppError {
	e := New(CodeInvalidInput, "You have missing required fields", http.StatusUnprocessableEntity)
	e.Details = []string{field + " is required"}
	return e
}

// InvalidField builds the validation error for one malformed field.
func InvalidField(field string) *AppError {
	e := New(CodeInvalidInput, field+" is invalid", http.StatusUnprocessableEntity)
	return e
}
