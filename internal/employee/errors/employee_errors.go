package employeeerrors

import (
	"net/http"

	"assetdesk/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email address already taken by another user",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee role",
		http.StatusUnprocessableEntity,
	)
)
