package credential

import (
	"encoding/base64"
	"net/mail"
	"strings"
)

// Basic is an HTTP Basic authentication credential (RFC 7617).
// Values are immutable once constructed; equality is structural.
type Basic struct {
	Username string
	Password string
}

// NewBasic creates a Basic credential from a username and password.
//
// Empty usernames and passwords are accepted. RFC 7617 leaves empty fields to
// the server's policy, and rejecting them here would make the constructor
// stricter than the wire format. Callers that require non-empty fields must
// enforce that at the call site.
//
// Usernames containing a colon cannot round-trip: the decoder splits on the
// first colon, so everything after it becomes part of the password.
func NewBasic(username, password string) Basic {
	return Basic{Username: username, Password: password}
}

// NewBasicFromEmail creates a Basic credential using the email address's
// canonical form as the username. The address must already be validated;
// use net/mail.ParseAddress to obtain one.
func NewBasicFromEmail(address *mail.Address, password string) Basic {
	return NewBasic(address.Address, password)
}

// Scheme returns SchemeBasic.
func (c Basic) Scheme() Scheme {
	return SchemeBasic
}

// Encoded returns the base64 encoding of "username:password" UTF-8 bytes.
// Standard encoding with padding, matching what HTTP clients send.
func (c Basic) Encoded() string {
	return base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))
}

// HeaderValue returns the full Authorization header value, "Basic <base64>".
func (c Basic) HeaderValue() string {
	return SchemeBasic.prefix() + c.Encoded()
}

// Redacted returns a log-safe representation with the password masked.
func (c Basic) Redacted() string {
	return "Basic " + c.Username + ":****"
}

// ParseBasic parses an Authorization header value of the exact form
// "Basic <base64(username:password)>". The decoded text is split on the
// first colon; the username therefore never contains a colon.
//
// Fails with *DecodeError when the prefix is missing (ErrPrefixMismatch),
// the base64 is invalid, or the decoded text has no colon (both
// ErrMalformedPayload).
func ParseBasic(value string) (Basic, error) {
	payload, ok := strings.CutPrefix(value, SchemeBasic.prefix())
	if !ok {
		return Basic{}, newDecodeError(SchemeBasic, ErrPrefixMismatch)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Basic{}, newDecodeError(SchemeBasic, ErrMalformedPayload)
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return Basic{}, newDecodeError(SchemeBasic, ErrMalformedPayload)
	}

	return NewBasic(username, password), nil
}
