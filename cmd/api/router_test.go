package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pokedex/internal/config"
	"github.com/pkordes/pokedex/internal/repo"
	"github.com/pkordes/pokedex/internal/service"
)

func testRouter(t *testing.T, trustProxy bool) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := config.Config{
		CORSOrigins:       []string{"http://localhost:5173"},
		MaxBodyBytes:      1 << 20,
		RateLimitRPS:      0.01,
		RateLimitBurst:    1,
		TrustProxyHeaders: trustProxy,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	pokemons := service.NewPokemonService(repo.NewMemoryPokemonRepo())
	return newRouter(ctx, cfg, logger, pokemons, prometheus.NewRegistry())
}

// countLimited sends n requests from one socket, each claiming a different
// client IP, and returns how many were rejected with 429.
func countLimited(h http.Handler, n int) int {
	var limited int
	for i := range n {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "192.0.2.10:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	return limited
}

// TestRouter_ForwardedForCannotDodgeRateLimit verifies that by default a
// client rotating X-Forwarded-For still draws from one bucket.
func TestRouter_ForwardedForCannotDodgeRateLimit(t *testing.T) {
	h := testRouter(t, false)

	assert.Equal(t, 99, countLimited(h, 100))
}

// TestRouter_TrustedProxyHeadersSelectClient verifies that with proxy headers
// trusted, each forwarded client IP gets its own bucket.
func TestRouter_TrustedProxyHeadersSelectClient(t *testing.T) {
	h := testRouter(t, true)

	assert.Equal(t, 0, countLimited(h, 100))
}

func TestRouter_ServesMetrics(t *testing.T) {
	h := testRouter(t, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
