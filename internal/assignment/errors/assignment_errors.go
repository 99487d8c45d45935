package assignmenterrors

import (
	"net/http"

	"assetdesk/internal/shared/apperror"
)

var (
	// ErrAssignmentNotFound also covers retrieval of an already-retrieved
	// record. Unknown id and closed loan are indistinguishable to callers.
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee device not found",
		http.StatusNotFound,
	)
)
