package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/pokedex/internal/config"
	"github.com/pkordes/pokedex/internal/handler"
	"github.com/pkordes/pokedex/internal/middleware"
)

// rateLimitJanitorInterval is how often idle rate-limit buckets are swept.
const rateLimitJanitorInterval = 2 * time.Minute

// newRouter installs the middleware chain and every route.
//
// Order: RequestID → RealIP → SlogLogger → Metrics → Recoverer → CORS →
// RateLimit → MaxBodySize. Recoverer sits inside the logger and metrics so
// a recovered panic is still recorded as a 500. RealIP is installed only when
// proxy headers are trusted; otherwise the rate limiter keys on the socket
// address and a client cannot pick its own bucket.
func newRouter(ctx context.Context, cfg config.Config, logger *slog.Logger, pokemons handler.PokemonServicer, registry *prometheus.Registry) http.Handler {
	metrics := middleware.NewMetrics(registry)

	r := chi.NewRouter()
	r.Use(middleware.NewRequestID())
	if cfg.TrustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(metrics.Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	if cfg.RateLimitEnabled() {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		limiter.StartJanitor(ctx, rateLimitJanitorInterval)
		r.Use(limiter.Handler)
	}
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return handler.HandlerFromMux(handler.NewServer(pokemons), r)
}
