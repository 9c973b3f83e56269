package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestIDContextKey struct{}

// RequestIDFromContext returns the request ID assigned by RequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// RequestID propagates or generates an X-Request-ID header, writes it back
// on the response, and attaches a logger carrying the ID to the request
// context so downstream middleware logs correlate.
func RequestID(log zerolog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			writer.Header().Set("X-Request-ID", requestID)

			logger := log.With().Str("req_id", requestID).Logger()
			ctx := logger.WithContext(request.Context())
			ctx = context.WithValue(ctx, requestIDContextKey{}, requestID)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
