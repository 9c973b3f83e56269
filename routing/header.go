package routing

import (
	"github.com/omarluq/authroute/credential"
)

// authorizationHeader is the single header slot the credential router owns.
const authorizationHeader = "Authorization"

// HeaderCodec lifts a credential text codec into the request-data model by
// binding it to the Authorization header. Encoding sets the header on
// otherwise-untouched request data; decoding reads the header's first value
// without consuming it, so the application route codec can still inspect
// headers afterwards.
type HeaderCodec[C any] struct {
	codec credential.Codec[C]
}

// NewHeaderCodec binds a credential codec to the Authorization header.
func NewHeaderCodec[C any](codec credential.Codec[C]) HeaderCodec[C] {
	return HeaderCodec[C]{codec: codec}
}

var _ Codec[credential.Bearer] = HeaderCodec[credential.Bearer]{}

// Encode sets the Authorization header to the encoded credential.
// All other request-data fields pass through unchanged.
func (h HeaderCodec[C]) Encode(data *RequestData, cred C) error {
	data.Headers.Set(authorizationHeader, h.codec.EncodeValue(cred))
	return nil
}

// Decode reads the Authorization header's first value and parses it.
// Fails with *DecodeError (KindMissingHeader, wrapping
// ErrMissingAuthorization) when the header is absent or empty.
func (h HeaderCodec[C]) Decode(data *RequestData) (C, error) {
	value := data.Headers.Get(authorizationHeader)
	if value == "" {
		var zero C
		return zero, newDecodeError(KindMissingHeader, ErrMissingAuthorization)
	}
	return h.codec.DecodeValue(value)
}
