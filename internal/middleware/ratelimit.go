package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP.
// Buckets idle for longer than the idle TTL are dropped by the janitor.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu      sync.Mutex
	clients map[string]*rateClient
}

type rateClient struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimitOption configures a RateLimiter.
type RateLimitOption func(*RateLimiter)

// WithIdleTTL sets how long an unused client bucket is kept. Defaults to 15 minutes.
func WithIdleTTL(d time.Duration) RateLimitOption {
	return func(l *RateLimiter) { l.idleTTL = d }
}

// NewRateLimiter builds a limiter that refills rps tokens per second per
// client, up to burst.
func NewRateLimiter(rps float64, burst int, opts ...RateLimitOption) *RateLimiter {
	l := &RateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
		clients: make(map[string]*rateClient),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Handler rejects requests over the client's budget with a JSON 429 and a
// Retry-After header in whole seconds. Clients are told apart by
// RemoteAddr only; request headers never choose the bucket.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := l.limiter(clientKey(r)).Reserve()
		if !res.OK() || res.Delay() > 0 {
			retryAfter := 1
			if res.OK() {
				retryAfter = retryAfterSeconds(res.Delay())
				res.Cancel()
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			writeErrorJSON(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StartJanitor evicts idle buckets every interval until ctx is done.
func (l *RateLimiter) StartJanitor(ctx context.Context, every time.Duration) {
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Cleanup()
			}
		}
	}()
}

// Cleanup drops buckets not used within the idle TTL.
func (l *RateLimiter) Cleanup() {
	cutoff := time.Now().Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}

// Len reports how many client buckets are held.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.clients[key]; ok {
		c.lastSeen = now
		return c.lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.clients[key] = &rateClient{lim: lim, lastSeen: now}
	return lim
}

// clientKey is the client IP. RemoteAddr has already been rewritten by
// chi's RealIP middleware when the server sits behind a proxy.
func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

func retryAfterSeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}
