package middleware

import (
	"context"
	"net/http"

	"github.com/oklog/ulid/v2"
)

type contextKey string

// requestIDKey is the context key under which the request ID is stored.
const requestIDKey contextKey = "request_id"

// RequestIDHeader carries the request ID back to the caller.
const RequestIDHeader = "X-Request-Id"

// RequestID tags every request with a fresh ULID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ulid.Make().String()
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID, or "" when the middleware
// did not run.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
