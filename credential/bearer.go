package credential

import (
	"fmt"
	"strings"

	"golang.org/x/oauth2"
)

// Bearer is an HTTP Bearer token credential (RFC 6750).
// Values are immutable once constructed; equality is structural.
type Bearer struct {
	Token string
}

// NewBearer creates a Bearer credential. The token is stored verbatim.
// Fails with *ValidationError wrapping ErrEmptyToken if the token is empty.
func NewBearer(token string) (Bearer, error) {
	if token == "" {
		return Bearer{}, newValidationError(SchemeBearer, ErrEmptyToken)
	}
	return Bearer{Token: token}, nil
}

// NewBearerFromTokenSource creates a Bearer credential from an OAuth2 token
// source. The token is fetched once; refresh is the token source's concern
// and callers that need fresh tokens should construct a new credential.
func NewBearerFromTokenSource(source oauth2.TokenSource) (Bearer, error) {
	token, err := source.Token()
	if err != nil {
		return Bearer{}, fmt.Errorf("credential: fetch oauth2 token: %w", err)
	}
	return NewBearer(token.AccessToken)
}

// Scheme returns SchemeBearer.
func (c Bearer) Scheme() Scheme {
	return SchemeBearer
}

// HeaderValue returns the full Authorization header value, "Bearer <token>".
func (c Bearer) HeaderValue() string {
	return SchemeBearer.prefix() + c.Token
}

// Redacted returns a log-safe representation with the token masked.
func (c Bearer) Redacted() string {
	return "Bearer ****"
}

// ParseBearer parses an Authorization header value of the exact form
// "Bearer <token>". The token is taken verbatim after the prefix.
//
// An empty token is rejected with *DecodeError wrapping ErrEmptyToken so that
// parsing enforces the same invariant as construction; a value produced by
// ParseBearer can always be reconstructed through NewBearer.
func ParseBearer(value string) (Bearer, error) {
	token, ok := strings.CutPrefix(value, SchemeBearer.prefix())
	if !ok {
		return Bearer{}, newDecodeError(SchemeBearer, ErrPrefixMismatch)
	}
	if token == "" {
		return Bearer{}, newDecodeError(SchemeBearer, ErrEmptyToken)
	}
	return Bearer{Token: token}, nil
}
