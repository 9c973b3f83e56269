package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/omarluq/authroute/routing"
)

// Middleware is the standard net/http middleware shape.
type Middleware func(http.Handler) http.Handler

type routeContextKey struct{}

// RouteFromContext returns the authenticated route decoded by Authenticate,
// if the request passed through it.
func RouteFromContext[C, R any](ctx context.Context) (routing.AuthenticatedRoute[C, R], bool) {
	route, ok := ctx.Value(routeContextKey{}).(routing.AuthenticatedRoute[C, R])
	return route, ok
}

// AuthOption configures the Authenticate middleware.
type AuthOption[C any] func(*authSettings[C])

type authSettings[C any] struct {
	cache *CredentialCache[C]
}

// WithCache enables credential caching: requests repeating a previously
// verified Authorization header skip parsing and verification. Entry
// lifetime is the cache's own configured TTL.
func WithCache[C any](cache *CredentialCache[C]) AuthOption[C] {
	return func(s *authSettings[C]) {
		s.cache = cache
	}
}

// Authenticate decodes each incoming request through the authenticated codec
// and verifies the recovered credential.
//
// Unauthenticated or invalid requests receive 401 with an
// authentication_error body; authenticated requests whose route matches
// nothing receive 404. On success the decoded route is stored in the request
// context for handlers, reachable through RouteFromContext.
func Authenticate[C, R any](
	codec *routing.AuthenticatedCodec[C, R],
	verify Verifier[C],
	opts ...AuthOption[C],
) Middleware {
	settings := authSettings[C]{}
	for _, opt := range opts {
		opt(&settings)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			data, err := routing.FromHTTPRequest(request)
			if err != nil {
				zerolog.Ctx(request.Context()).Warn().Err(err).Msg("failed to capture request")
				WriteError(writer, request, http.StatusBadRequest, "invalid_request",
					"request could not be read")
				return
			}

			route, ok := decodeAndVerify(writer, request, codec, verify, &settings, data)
			if !ok {
				return
			}

			zerolog.Ctx(request.Context()).Debug().Msg("authentication succeeded")

			ctx := context.WithValue(request.Context(), routeContextKey{}, route)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// decodeAndVerify runs the auth-first decode, consulting the credential
// cache when configured. It writes the error response itself on failure.
func decodeAndVerify[C, R any](
	writer http.ResponseWriter,
	request *http.Request,
	codec *routing.AuthenticatedCodec[C, R],
	verify Verifier[C],
	settings *authSettings[C],
	data *routing.RequestData,
) (routing.AuthenticatedRoute[C, R], bool) {
	var zero routing.AuthenticatedRoute[C, R]
	headerValue := request.Header.Get("Authorization")

	// Cache hit: the credential was already parsed and verified.
	if settings.cache != nil {
		if cred, ok := settings.cache.Get(headerValue); ok {
			api, err := codec.DecodeRoute(data)
			if err != nil {
				failRoute(writer, request, err)
				return zero, false
			}
			return routing.NewAuthenticatedRoute(cred, api), true
		}
	}

	authed, err := codec.Decode(data)
	switch {
	case routing.IsAuthenticationError(err):
		failAuth(writer, request, err)
		return zero, false
	case routing.IsRouteNotMatched(err):
		failRoute(writer, request, err)
		return zero, false
	case err != nil:
		zerolog.Ctx(request.Context()).Error().Err(err).Msg("decode failed")
		WriteError(writer, request, http.StatusInternalServerError, "internal_error", "decode failed")
		return zero, false
	}

	if !verify(authed.Auth) {
		failAuth(writer, request, nil)
		return zero, false
	}

	if settings.cache != nil {
		settings.cache.Put(headerValue, authed.Auth)
	}

	return authed, true
}

func failAuth(writer http.ResponseWriter, request *http.Request, err error) {
	event := zerolog.Ctx(request.Context()).Warn()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg("authentication failed")

	WriteError(writer, request, http.StatusUnauthorized, "authentication_error",
		"missing or invalid credentials")
}

func failRoute(writer http.ResponseWriter, request *http.Request, err error) {
	zerolog.Ctx(request.Context()).Warn().Err(err).Msg("route not matched")
	WriteError(writer, request, http.StatusNotFound, "not_found", "no route matched the request")
}
