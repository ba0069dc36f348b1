// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8000".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps the size of request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// RateLimitRPS is the per-client request refill rate. Defaults to 20.
	// Zero disables rate limiting.
	RateLimitRPS float64

	// RateLimitBurst is the per-client bucket size. Defaults to 40.
	RateLimitBurst int

	// TrustProxyHeaders makes the server take the client IP from
	// True-Client-IP, X-Real-IP or X-Forwarded-For. Defaults to false.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable whose value cannot be used.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var invalid []string

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil || rps < 0 || math.IsNaN(rps) || math.IsInf(rps, 0) {
		invalid = append(invalid, "RATE_LIMIT_RPS")
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40"))
	if err != nil || burst < 1 {
		invalid = append(invalid, "RATE_LIMIT_BURST")
	}
	cfg.RateLimitBurst = burst

	trust, err := strconv.ParseBool(getEnv("TRUST_PROXY_HEADERS", "false"))
	if err != nil {
		invalid = append(invalid, "TRUST_PROXY_HEADERS")
	}
	cfg.TrustProxyHeaders = trust

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// RateLimitEnabled reports whether the rate-limit middleware should be installed.
func (c Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
