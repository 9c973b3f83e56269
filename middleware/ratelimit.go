package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// RateLimit enforces a global request rate using a token bucket.
// Rejected requests receive 429 with a Retry-After header.
func RateLimit(requestsPerSecond float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			reservation := limiter.Reserve()
			if !reservation.OK() {
				WriteRateLimitError(writer, request, time.Second)
				return
			}

			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()
				zerolog.Ctx(request.Context()).Warn().
					Dur("retry_after", delay).
					Msg("request rejected: rate limit reached")
				WriteRateLimitError(writer, request, delay)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// Chain composes middlewares so the first one listed runs outermost.
func Chain(middlewares ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		handler := next
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
