package apperror

import (
	"errors"
	"net/http"
	"os"
)

// HTTPError is the handler-facing view of a failure.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details []string
}

// ToHTTP maps any error to an HTTPError. Non-AppError values are downgraded
// to a generic internal failure; the underlying detail is only exposed when
// APP_ENV=development.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	h := HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Request failed",
	}
	if os.Getenv("APP_ENV") == "development" && err != nil {
		h.Details = []string{err.Error()}
	}
	return h
}
