package handler

import (
	"net/http"

	"github.com/jkorhonen/rinkroster/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeNameRequired       = apierr.CodeNameRequired
	CodeInvalidNumber      = apierr.CodeInvalidNumber
	CodeInvalidPosition    = apierr.CodeInvalidPosition
	CodeInvalidStatus      = apierr.CodeInvalidStatus
	CodeInvalidSlot        = apierr.CodeInvalidSlot
	CodePlayerNotFound     = apierr.CodePlayerNotFound
	CodeGameNotFound       = apierr.CodeGameNotFound
	CodeReadyListFull      = apierr.CodeReadyListFull
	CodeNotInReadyList     = apierr.CodeNotInReadyList
	CodeAlreadyInLineup    = apierr.CodeAlreadyInLineup
	CodeAlreadyInReadyList = apierr.CodeAlreadyInReadyList
	CodePositionMismatch   = apierr.CodePositionMismatch
	CodeSlotOccupied       = apierr.CodeSlotOccupied
	CodeSlotEmpty          = apierr.CodeSlotEmpty
	CodeInvalidBackup      = apierr.CodeInvalidBackup
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
