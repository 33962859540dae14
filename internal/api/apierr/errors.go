package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/crosswordbuilder/internal/model"
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
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidWord       = "INVALID_WORD"
	CodeInvalidTitle      = "INVALID_TITLE"
	CodeInvalidStrategy   = "INVALID_STRATEGY"
	CodePuzzleNotFound    = "PUZZLE_NOT_FOUND"
	CodeNoValidPlacement  = "NO_VALID_PLACEMENT"
	CodeWordListNotLoaded = "WORD_LIST_NOT_LOADED"
	CodeMalformedBoard    = "MALFORMED_BOARD"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
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

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
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
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPuzzleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePuzzleNotFound, "Puzzle not found"}}
	case errors.Is(err, model.ErrInvalidWord):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWord, err.Error()}}
	case errors.Is(err, model.ErrInvalidTitle):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTitle, err.Error()}}
	case errors.Is(err, model.ErrInvalidStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStrategy, err.Error()}}
	case errors.Is(err, model.ErrNoValidPlacement):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeNoValidPlacement, "Word cannot be placed on this puzzle"}}
	case errors.Is(err, model.ErrWordListNotLoaded):
		return &httpError{http.StatusConflict, APIError{CodeWordListNotLoaded, "No word list has been loaded"}}

	// A stored puzzle that no longer rebuilds is a server-side fault
	case errors.Is(err, model.ErrConflictingOverlap),
		errors.Is(err, model.ErrDuplicateKey),
		errors.Is(err, model.ErrInvalidAnchor),
		errors.Is(err, model.ErrInvalidOrientation):
		return &httpError{http.StatusInternalServerError, APIError{CodeMalformedBoard, "Stored puzzle is malformed"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a not found error for unknown routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
