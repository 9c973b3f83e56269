package client

import (
	"errors"
	"fmt"
)

var errRelativeBaseURL = errors.New("client: base URL must be absolute")

// RequestConstructionError is returned when encoded request data cannot be
// converted into a concrete *http.Request (malformed base URL, invalid
// method characters, and similar transport-level conversion failures).
type RequestConstructionError struct {
	cause error
}

// Error implements the error interface.
func (e *RequestConstructionError) Error() string {
	return fmt.Sprintf("client: construct request: %v", e.cause)
}

// Unwrap returns the underlying cause so errors.Is matching works.
func (e *RequestConstructionError) Unwrap() error {
	return e.cause
}
