package routing

import (
	"errors"
	"fmt"
)

// ErrMissingAuthorization indicates the Authorization header was absent or
// empty on the request being decoded.
var ErrMissingAuthorization = errors.New("routing: missing authorization header")

// DecodeKind classifies decode failures so callers can distinguish
// authentication failures from route mismatches.
type DecodeKind string

const (
	// KindMissingHeader means the Authorization header was absent or empty.
	KindMissingHeader DecodeKind = "missing_header"
	// KindAuthenticationFailed means the Authorization header was missing,
	// malformed, or failed scheme validation.
	KindAuthenticationFailed DecodeKind = "authentication_failed"
	// KindRouteNotMatched means authentication succeeded but the application
	// route codec matched no route.
	KindRouteNotMatched DecodeKind = "route_not_matched"
)

// DecodeError is returned when request data cannot be decoded into a
// credential or route. The innermost cause is always preserved.
type DecodeError struct {
	Kind  DecodeKind
	cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("routing: decode: %s: %v", e.Kind, e.cause)
}

// Unwrap returns the underlying cause so errors.Is matching works.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

func newDecodeError(kind DecodeKind, cause error) *DecodeError {
	return &DecodeError{Kind: kind, cause: cause}
}

// IsAuthenticationError reports whether err is a decode failure of the
// authentication step (as opposed to a route mismatch).
func IsAuthenticationError(err error) bool {
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		return false
	}
	return decodeErr.Kind == KindAuthenticationFailed || decodeErr.Kind == KindMissingHeader
}

// IsRouteNotMatched reports whether err is a route-mismatch decode failure.
func IsRouteNotMatched(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr) && decodeErr.Kind == KindRouteNotMatched
}

// EncodeError is returned when a credential or route cannot be printed into
// request data. It adds no failure modes of its own; it wraps the
// sub-encoder's failure verbatim.
type EncodeError struct {
	cause error
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("routing: encode: %v", e.cause)
}

// Unwrap returns the underlying cause so errors.Is matching works.
func (e *EncodeError) Unwrap() error {
	return e.cause
}
