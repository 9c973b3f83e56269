// Package middleware provides net/http middleware that runs the decode
// direction of an authenticated codec against incoming requests: it rejects
// unauthenticated requests, verifies recovered credentials in constant time,
// and hands the decoded route to downstream handlers through the context.
package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// ErrorResponse is the JSON error body written by the middleware.
type ErrorResponse struct {
	Type  string      `json:"type"`
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the error type and message.
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// WriteError writes a JSON error response with the given status code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, errorType, message string) {
	response := ErrorResponse{
		Type: "error",
		Error: ErrorDetail{
			Type:    errorType,
			Message: message,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write error response")
	}
}

// WriteRateLimitError writes a 429 response with a Retry-After header
// (RFC 6585) indicating when capacity will be available.
func WriteRateLimitError(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	seconds := int(retryAfter.Seconds())
	if seconds < 1 {
		seconds = 1 // Minimum 1 second
	}
	w.Header().Set("Retry-After", strconv.Itoa(seconds))

	WriteError(w, r, http.StatusTooManyRequests, "rate_limit_error",
		"request rate limit exceeded, please retry after the specified time")
}
