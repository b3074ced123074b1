package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jkorhonen/rinkroster/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeNameRequired       = "NAME_REQUIRED"
	CodeInvalidNumber      = "INVALID_NUMBER"
	CodeInvalidPosition    = "INVALID_POSITION"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInvalidSlot        = "INVALID_SLOT"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeReadyListFull      = "READY_LIST_FULL"
	CodeNotInReadyList     = "NOT_IN_READY_LIST"
	CodeAlreadyInLineup    = "ALREADY_IN_LINEUP"
	CodeAlreadyInReadyList = "ALREADY_IN_READY_LIST"
	CodePositionMismatch   = "POSITION_MISMATCH"
	CodeSlotOccupied       = "SLOT_OCCUPIED"
	CodeSlotEmpty          = "SLOT_EMPTY"
	CodeInvalidBackup      = "INVALID_BACKUP"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeNameRequired, "Player name is required"}}
	case errors.Is(err, model.ErrInvalidNumber):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidNumber, "Jersey number must not be negative"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Position must be goalie, forward or defender"}}
	case errors.Is(err, model.ErrInvalidStatus):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStatus, "Unknown availability status"}}
	case errors.Is(err, model.ErrInvalidSlot):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSlot, "Slot index must be between 0 and 15"}}
	case errors.Is(err, model.ErrReadyListFull):
		return &httpError{http.StatusConflict, APIError{CodeReadyListFull, "No free slot in the ready list"}}
	case errors.Is(err, model.ErrNotInReadyList):
		return &httpError{http.StatusConflict, APIError{CodeNotInReadyList, "Player is not in the ready list"}}
	case errors.Is(err, model.ErrAlreadyInLineup):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInLineup, "Player already holds a lineup slot"}}
	case errors.Is(err, model.ErrAlreadyInReadyList):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInReadyList, "Player already holds a ready slot"}}
	case errors.Is(err, model.ErrPositionMismatch):
		return &httpError{http.StatusConflict, APIError{CodePositionMismatch, "Slot 0 is goalie-only, slots 1-15 are for field players"}}
	case errors.Is(err, model.ErrSlotOccupied):
		return &httpError{http.StatusConflict, APIError{CodeSlotOccupied, "Slot is already occupied, clear it first"}}
	case errors.Is(err, model.ErrSlotEmpty):
		return &httpError{http.StatusConflict, APIError{CodeSlotEmpty, "Slot is empty"}}
	case errors.Is(err, model.ErrInvalidBackup):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBackup, "Backup file is malformed or missing team/games"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
