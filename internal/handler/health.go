package handler

import "net/http"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Message string `json:"message"`
}

// GetHealth handles GET /health.
// It returns HTTP 200 whenever the process is up; it does not touch the store.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Message: "Gotta catch them all!"})
}
