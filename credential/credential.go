// Package credential provides HTTP authentication credential values and the
// bidirectional text codecs that render them to and from Authorization header
// values. It supports Basic (RFC 7617) and Bearer (RFC 6750) schemes.
package credential

// Scheme identifies the HTTP authentication scheme a credential belongs to.
type Scheme string

const (
	// SchemeBasic is HTTP Basic authentication (RFC 7617).
	SchemeBasic Scheme = "basic"
	// SchemeBearer is HTTP Bearer token authentication (RFC 6750).
	SchemeBearer Scheme = "bearer"
)

// prefix returns the literal Authorization header prefix for the scheme,
// including the trailing space.
func (s Scheme) prefix() string {
	switch s {
	case SchemeBasic:
		return "Basic "
	case SchemeBearer:
		return "Bearer "
	default:
		return ""
	}
}

// Credential is implemented by all credential value types.
// HeaderValue returns the full Authorization header value including the
// scheme prefix; it is what the header router writes on outgoing requests.
type Credential interface {
	// Scheme returns the authentication scheme of the credential.
	Scheme() Scheme
	// HeaderValue returns the complete Authorization header value.
	HeaderValue() string
	// Redacted returns a log-safe representation with secrets masked.
	Redacted() string
}
