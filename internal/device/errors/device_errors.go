package deviceerrors

import (
	"net/http"

	"assetdesk/internal/shared/apperror"
)

var (
	ErrDeviceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Device record not found",
		http.StatusNotFound,
	)
	ErrDeviceExists = apperror.New(
		apperror.CodeConflict,
		"This device already exists, kindly update the device total units instead.",
		http.StatusUnprocessableEntity,
	)
	ErrUnitsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Device units are required",
		http.StatusUnprocessableEntity,
	)
	ErrNoAvailableUnits = apperror.New(
		apperror.CodeInvalidState,
		"No available units for this device",
		http.StatusUnprocessableEntity,
	)
)
