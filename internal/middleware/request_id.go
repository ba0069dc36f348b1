package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxInboundRequestIDLen bounds client-supplied IDs so they cannot bloat logs.
const maxInboundRequestIDLen = 128

// NewRequestID returns a middleware that tags every request with an ID.
// An inbound X-Request-Id header is reused when present and reasonably short;
// otherwise a random UUID is generated. The ID is stored under chi's
// RequestIDKey, so chimiddleware.GetReqID works downstream, and echoed back
// in the response header.
func NewRequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(chimiddleware.RequestIDHeader)
			if id == "" || len(id) > maxInboundRequestIDLen {
				id = uuid.NewString()
			}

			w.Header().Set(chimiddleware.RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
