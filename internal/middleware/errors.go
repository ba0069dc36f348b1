package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorBody mirrors handler.ErrorResponse so responses written by middleware
// have the same shape as those written by the handlers.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeErrorJSON(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode error response", "error", err)
	}
}
