package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/pokedex/internal/domain"
)

// ErrorDetail is the machine-readable code and human-readable message of a failure.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// badRequest reports input rejected before or during validation.
// The message is deliberately generic: clients get no field-level detail.
func badRequest(w http.ResponseWriter) {
	writeErrorBody(w, http.StatusBadRequest, "bad_request", "invalid pokemon")
}

// writeError maps a service error onto its status code:
// ErrUnknown→500, ErrValidation→400, ErrNotFound→404, ErrConflict→409.
// Anything unrecognised is a 500. Only 500s are logged here; the request
// logger already records the status of every response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknown):
		// Checked first: an unknown failure may wrap another kind.
	case errors.Is(err, domain.ErrValidation):
		badRequest(w)
		return
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, "not_found", "pokemon not found")
		return
	case errors.Is(err, domain.ErrConflict):
		writeErrorBody(w, http.StatusConflict, "conflict", "pokemon number already registered")
		return
	}

	slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeErrorBody(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
