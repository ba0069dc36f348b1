package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pokedex/internal/middleware"
)

// captureReqID runs the middleware and returns the ID seen downstream.
func captureReqID(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var seen string
	h := middleware.NewRequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = chimiddleware.GetReqID(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	seen, rec := captureReqID(t, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err, "generated ID should be a UUID")
	assert.Equal(t, seen, rec.Header().Get("X-Request-Id"))
}

func TestRequestID_ReusesInboundHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "from-gateway-42")

	seen, rec := captureReqID(t, req)

	assert.Equal(t, "from-gateway-42", seen)
	assert.Equal(t, "from-gateway-42", rec.Header().Get("X-Request-Id"))
}

func TestRequestID_ReplacesOversizedInboundHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", strings.Repeat("a", 500))

	seen, _ := captureReqID(t, req)

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}
