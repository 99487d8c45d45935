package usererrors

import (
	"net/http"

	"assetdesk/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User record not found",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email address already taken by another user",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Email address is not valid",
		http.StatusUnprocessableEntity,
	)

	// Deliberately identical for unknown email and wrong password so the
	// response does not reveal which part failed.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid Email or password",
		http.StatusUnauthorized,
	)
	ErrAccountSuspended = apperror.New(
		apperror.CodeForbidden,
		"This account has been suspended, please contact support for reactivation.",
		http.StatusForbidden,
	)
	ErrAccountNotActive = apperror.New(
		apperror.CodeUnauthorized,
		"User account is not active",
		http.StatusUnauthorized,
	)

	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Authorization token missing",
		http.StatusUnauthorized,
	)
	ErrTokenInvalid = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrOTPInvalid = apperror.New(
		apperror.CodeInvalidInput,
		"Provided OTP is invalid",
		http.StatusUnprocessableEntity,
	)
	ErrOTPExpired = apperror.New(
		apperror.CodeInvalidInput,
		"Provided OTP has expired",
		http.StatusUnprocessableEntity,
	)
)
