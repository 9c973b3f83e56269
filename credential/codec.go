package credential

import (
	"github.com/samber/mo"
)

// Codec is a pure bidirectional transform between a credential value and the
// full Authorization header text (scheme prefix included). Implementations
// hold no mutable state and are safe for concurrent use.
type Codec[C any] interface {
	// EncodeValue renders the credential as an Authorization header value.
	EncodeValue(cred C) string
	// DecodeValue parses an Authorization header value into a credential.
	DecodeValue(value string) (C, error)
}

// BasicCodec encodes and decodes Basic credentials.
type BasicCodec struct{}

var _ Codec[Basic] = BasicCodec{}

// EncodeValue renders "Basic <base64(username:password)>".
func (BasicCodec) EncodeValue(cred Basic) string {
	return cred.HeaderValue()
}

// DecodeValue parses a "Basic <base64>" header value.
func (BasicCodec) DecodeValue(value string) (Basic, error) {
	return ParseBasic(value)
}

// BearerCodec encodes and decodes Bearer credentials.
type BearerCodec struct{}

var _ Codec[Bearer] = BearerCodec{}

// EncodeValue renders "Bearer <token>".
func (BearerCodec) EncodeValue(cred Bearer) string {
	return cred.HeaderValue()
}

// DecodeValue parses a "Bearer <token>" header value.
func (BearerCodec) DecodeValue(value string) (Bearer, error) {
	return ParseBearer(value)
}

// DecodeResult decodes a header value through the codec and returns the
// outcome as mo.Result, for Railway-Oriented Programming call sites.
func DecodeResult[C any](codec Codec[C], value string) mo.Result[C] {
	cred, err := codec.DecodeValue(value)
	if err != nil {
		return mo.Err[C](err)
	}
	return mo.Ok(cred)
}
