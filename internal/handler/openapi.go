package handler

import (
	"log/slog"
	"net/http"

	"github.com/pkordes/pokedex/openapi"
)

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(openapi.Document); err != nil {
		slog.ErrorContext(r.Context(), "write openapi document", "error", err)
	}
}
