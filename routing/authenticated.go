package routing

import (
	"context"
	"net/http"
	"net/url"

	"github.com/samber/mo"

	"github.com/omarluq/authroute/credential"
)

// AuthenticatedRoute pairs an authentication credential with an application
// route value. It is a pure value pairing with structural equality; it has
// no invariants beyond those of its members.
type AuthenticatedRoute[C, R any] struct {
	Auth C
	API  R
}

// NewAuthenticatedRoute pairs a credential with a route value.
func NewAuthenticatedRoute[C, R any](auth C, api R) AuthenticatedRoute[C, R] {
	return AuthenticatedRoute[C, R]{Auth: auth, API: api}
}

// NewBearerRoute pairs a route with a Bearer credential built from a raw
// token. Fails if the token is invalid per credential.NewBearer.
func NewBearerRoute[R any](token string, api R) (AuthenticatedRoute[credential.Bearer, R], error) {
	auth, err := credential.NewBearer(token)
	if err != nil {
		return AuthenticatedRoute[credential.Bearer, R]{}, err
	}
	return NewAuthenticatedRoute(auth, api), nil
}

// AuthenticatedCodec composes a credential header codec with an application
// route codec into one bidirectional codec over AuthenticatedRoute.
//
// Both sub-codecs operate on the same request data: the header codec owns
// the Authorization header slot, the route codec owns method, path, query,
// and body. Because the slots are disjoint, encode order is unobservable.
//
// The codec holds only immutable configuration and is safe for concurrent
// encode/decode calls.
type AuthenticatedCodec[C, R any] struct {
	header HeaderCodec[C]
	api    Codec[R]
	base   *url.URL
}

// NewAuthenticatedCodec composes a credential codec and an application route
// codec over the given base URL. Both codecs are explicit parameters; there
// is no ambient registry to resolve them from.
func NewAuthenticatedCodec[C, R any](
	base *url.URL,
	credCodec credential.Codec[C],
	apiCodec Codec[R],
) *AuthenticatedCodec[C, R] {
	return &AuthenticatedCodec[C, R]{
		header: NewHeaderCodec(credCodec),
		api:    apiCodec,
		base:   base,
	}
}

// BaseURL returns the base URL the codec resolves requests against.
func (c *AuthenticatedCodec[C, R]) BaseURL() *url.URL {
	return c.base
}

// Encode prints the authenticated route into a single merged request data:
// the Authorization header from the credential, and method, path, query, and
// body from the application route. Failures of either sub-encoder are
// wrapped in *EncodeError with the cause preserved.
func (c *AuthenticatedCodec[C, R]) Encode(route AuthenticatedRoute[C, R]) (*RequestData, error) {
	data := NewRequestData()

	if err := c.header.Encode(data, route.Auth); err != nil {
		return nil, &EncodeError{cause: err}
	}
	if err := c.api.Encode(data, route.API); err != nil {
		return nil, &EncodeError{cause: err}
	}

	return data, nil
}

// Decode parses request data back into an authenticated route.
//
// Authentication is decoded first: an unauthenticated request is rejected
// before route matching is attempted, so authentication failures stay
// distinguishable from route mismatches. The request data is not consumed;
// headers remain visible to the application route codec.
func (c *AuthenticatedCodec[C, R]) Decode(data *RequestData) (AuthenticatedRoute[C, R], error) {
	var zero AuthenticatedRoute[C, R]

	auth, err := c.header.Decode(data)
	if err != nil {
		return zero, newDecodeError(KindAuthenticationFailed, err)
	}

	api, err := c.api.Decode(data)
	if err != nil {
		return zero, newDecodeError(KindRouteNotMatched, err)
	}

	return NewAuthenticatedRoute(auth, api), nil
}

// DecodeRoute decodes only the application route, skipping authentication.
// It exists for callers that have already authenticated the request out of
// band, such as servers replaying a cached credential verification. Fails
// with *DecodeError (KindRouteNotMatched) if no route matches.
func (c *AuthenticatedCodec[C, R]) DecodeRoute(data *RequestData) (R, error) {
	api, err := c.api.Decode(data)
	if err != nil {
		var zero R
		return zero, newDecodeError(KindRouteNotMatched, err)
	}
	return api, nil
}

// DecodeResult decodes request data and returns the outcome as mo.Result,
// for Railway-Oriented Programming call sites.
func (c *AuthenticatedCodec[C, R]) DecodeResult(data *RequestData) mo.Result[AuthenticatedRoute[C, R]] {
	route, err := c.Decode(data)
	if err != nil {
		return mo.Err[AuthenticatedRoute[C, R]](err)
	}
	return mo.Ok(route)
}

// Request encodes the authenticated route and converts it into a concrete
// *http.Request anchored at the codec's base URL.
func (c *AuthenticatedCodec[C, R]) Request(
	ctx context.Context,
	route AuthenticatedRoute[C, R],
) (*http.Request, error) {
	data, err := c.Encode(route)
	if err != nil {
		return nil, err
	}
	return data.HTTPRequest(ctx, c.base)
}
