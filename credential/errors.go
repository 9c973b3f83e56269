package credential

import (
	"errors"
	"fmt"
)

// Sentinel errors for credential construction and decoding.
// They are reachable through errors.Is on the typed errors below.
var (
	// ErrEmptyToken indicates a Bearer token that is empty.
	ErrEmptyToken = errors.New("credential: bearer token is empty")
	// ErrPrefixMismatch indicates the scheme prefix was absent from the input.
	ErrPrefixMismatch = errors.New("credential: authorization scheme prefix mismatch")
	// ErrMalformedPayload indicates the text after the prefix could not be
	// decoded (invalid base64, or no colon in the decoded user-pass).
	ErrMalformedPayload = errors.New("credential: malformed credential payload")
)

// ValidationError is returned when a credential constructor rejects its input.
// Construction failures are terminal; the caller must supply corrected input.
type ValidationError struct {
	Scheme Scheme
	cause  error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("credential: invalid %s credential: %v", e.Scheme, e.cause)
}

// Unwrap returns the underlying cause so errors.Is matching works.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

func newValidationError(scheme Scheme, cause error) *ValidationError {
	return &ValidationError{Scheme: scheme, cause: cause}
}

// DecodeError is returned when header text cannot be parsed into a credential.
type DecodeError struct {
	Scheme Scheme
	cause  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("credential: decode %s: %v", e.Scheme, e.cause)
}

// Unwrap returns the underlying cause so errors.Is matching works.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

func newDecodeError(scheme Scheme, cause error) *DecodeError {
	return &DecodeError{Scheme: scheme, cause: cause}
}
