package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/lightsim/internal/light"
)

// Error represents a structured error response.
type Error struct {
	Status  int            `json:"status"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Common error codes.
const (
	ErrCodeBadRequest  = "bad_request"
	ErrCodeNotFound    = "not_found"
	ErrCodeInternal    = "internal_error"
	ErrCodeOutOfRange  = "out_of_range"
	ErrCodeInvalidMode = "invalid_mode"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// writeBadRequest writes a 400 error response.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// writeNotFound writes a 404 error response.
func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, ErrCodeNotFound, message)
}

// writeInternalError writes a 500 error response.
func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, message)
}

// writeValidationError maps a light validation error onto a structured 400
// response carrying the rejected value and the legal domain, so clients can
// render the rejection without parsing the message text.
func writeValidationError(w http.ResponseWriter, err error) {
	var rangeErr *light.RangeError
	if errors.As(err, &rangeErr) {
		writeJSON(w, http.StatusBadRequest, Error{
			Status:  http.StatusBadRequest,
			Code:    ErrCodeOutOfRange,
			Message: rangeErr.Error(),
			Details: map[string]any{
				"field": rangeErr.Field,
				"min":   rangeErr.Min,
				"max":   rangeErr.Max,
				"value": rangeErr.Value,
			},
		})
		return
	}

	var modeErr *light.ModeError
	if errors.As(err, &modeErr) {
		writeJSON(w, http.StatusBadRequest, Error{
			Status:  http.StatusBadRequest,
			Code:    ErrCodeInvalidMode,
			Message: modeErr.Error(),
			Details: map[string]any{
				"mode":          modeErr.Mode,
				"allowed_modes": modeErr.Allowed,
			},
		})
		return
	}

	writeBadRequest(w, err.Error())
}
