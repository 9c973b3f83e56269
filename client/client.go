// Package client provides the authenticated-client facade: given credentials,
// a base URL, and an application route codec, it produces a ready-to-use
// client whose every request carries a valid Authorization header.
package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/omarluq/authroute/credential"
	"github.com/omarluq/authroute/routing"
)

// MakeRequest constructs a pre-authenticated *http.Request for a route.
// The facade hands this function to the client factory; every request the
// built client makes through it carries the facade's credential.
type MakeRequest[R any] func(route R) (*http.Request, error)

// Facade wraps a transport client built around an authenticated codec.
// It is immutable after construction and safe for concurrent use.
type Facade[C, R, T any] struct {
	codec  *routing.AuthenticatedCodec[C, R]
	auth   C
	client T
	log    zerolog.Logger
}

// Option configures a Facade.
type Option func(*settings)

type settings struct {
	log zerolog.Logger
}

// WithLogger enables debug logging of constructed requests.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// New builds a facade around the given credential and codecs.
//
// The credential codec and route codec are explicit parameters: the facade
// composes them once into an authenticated codec and passes its MakeRequest
// into build. The value build returns is the client, reachable through
// Client().
//
// Fails with *RequestConstructionError if the base URL cannot be parsed or
// is not absolute.
func New[C, R, T any](
	baseURL string,
	auth C,
	credCodec credential.Codec[C],
	apiCodec routing.Codec[R],
	build func(MakeRequest[R]) T,
	opts ...Option,
) (*Facade[C, R, T], error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	cfg := settings{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	facade := &Facade[C, R, T]{
		codec: routing.NewAuthenticatedCodec[C, R](base, credCodec, apiCodec),
		auth:  auth,
		log:   cfg.log,
	}
	facade.client = build(facade.MakeRequest)

	return facade, nil
}

// NewBearer builds a facade authenticated with a Bearer token constructed
// from the raw token string. Fails with the credential package's validation
// error if the token is empty.
func NewBearer[R, T any](
	baseURL, token string,
	apiCodec routing.Codec[R],
	build func(MakeRequest[R]) T,
	opts ...Option,
) (*Facade[credential.Bearer, R, T], error) {
	auth, err := credential.NewBearer(token)
	if err != nil {
		return nil, err
	}
	return New[credential.Bearer, R, T](baseURL, auth, credential.BearerCodec{}, apiCodec, build, opts...)
}

// Client returns the built transport client. Facade-level MakeRequest and
// requests made through the client are constructed identically.
func (f *Facade[C, R, T]) Client() T {
	return f.client
}

// MakeRequest encodes the route together with the facade's credential and
// converts the result into an *http.Request.
func (f *Facade[C, R, T]) MakeRequest(route R) (*http.Request, error) {
	return f.MakeRequestContext(context.Background(), route)
}

// MakeRequestContext is MakeRequest with a caller-supplied context.
//
// Encode failures propagate as *routing.EncodeError; failures converting the
// encoded request data into a concrete request surface as
// *RequestConstructionError.
func (f *Facade[C, R, T]) MakeRequestContext(ctx context.Context, route R) (*http.Request, error) {
	data, err := f.codec.Encode(routing.NewAuthenticatedRoute(f.auth, route))
	if err != nil {
		return nil, err
	}

	req, err := data.HTTPRequest(ctx, f.codec.BaseURL())
	if err != nil {
		return nil, &RequestConstructionError{cause: err}
	}

	f.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("constructed authenticated request")

	return req, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	base, err := url.Parse(raw)
	if err != nil {
		return nil, &RequestConstructionError{cause: err}
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, &RequestConstructionError{cause: errRelativeBaseURL}
	}
	return base, nil
}
