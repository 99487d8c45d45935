package apperror

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code       string // Error code (e.g., INVALID_INPUT)
	Message    string // User-friendly message
	HTTPStatus int    // HTTP status code
	Details    []string
	Err        error // Wrapped original error (optional)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supports errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy carrying per-field detail messages.
func (e *AppError) WithDetails(details ...string) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Is reports whether err is (or wraps) an AppError.
func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// New creates a new AppError without wrapping.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
