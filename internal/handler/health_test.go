package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pokedex/internal/handler"
)

// TestGetHealth_returns200WithMessage verifies that GET /health returns
// HTTP 200 and the liveness message.
func TestGetHealth_returns200WithMessage(t *testing.T) {
	httpHandler := handler.Handler(handler.NewServer(nil))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	httpHandler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "Gotta catch them all!", body.Message)
}

// TestGetOpenAPI_servesEmbeddedDocument verifies that the OpenAPI document
// is served from the binary.
func TestGetOpenAPI_servesEmbeddedDocument(t *testing.T) {
	httpHandler := handler.Handler(handler.NewServer(nil))

	rec := httptest.NewRecorder()
	httpHandler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}
