// Package routing provides a generic, transport-independent request-data
// model and bidirectional route codecs over it. Its centerpiece is the
// authenticated-route composition: a pairing of an authentication credential
// with an application route, and a codec that merges both encodings into a
// single request in one pass (and splits them back apart on decode).
package routing

// Codec is a bidirectional transform between request data and an
// application-defined route value. Encode writes the route's method, path,
// query, and body onto the given request data; Decode recovers the route
// from request data or fails if no route matches.
//
// Implementations must not retain or mutate request data beyond the fields
// they own, and must be safe for concurrent use.
type Codec[R any] interface {
	Encode(data *RequestData, route R) error
	Decode(data *RequestData) (R, error)
}

// CodecFunc adapts a pair of functions into a Codec.
type CodecFunc[R any] struct {
	EncodeFunc func(data *RequestData, route R) error
	DecodeFunc func(data *RequestData) (R, error)
}

// Encode calls EncodeFunc.
func (c CodecFunc[R]) Encode(data *RequestData, route R) error {
	return c.EncodeFunc(data, route)
}

// Decode calls DecodeFunc.
func (c CodecFunc[R]) Decode(data *RequestData) (R, error) {
	return c.DecodeFunc(data)
}
