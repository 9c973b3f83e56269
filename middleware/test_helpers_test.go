package middleware_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/omarluq/authroute/credential"
	"github.com/omarluq/authroute/routing"
)

// pingRoute is the test API surface: GET /ping.
type pingRoute struct{}

var errNotPing = errors.New("not the ping route")

func newPingCodec(t *testing.T) *routing.AuthenticatedCodec[credential.Bearer, pingRoute] {
	t.Helper()

	base, err := url.Parse("https://api.example.com")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}

	apiCodec := routing.CodecFunc[pingRoute]{
		EncodeFunc: func(data *routing.RequestData, _ pingRoute) error {
			data.Method = http.MethodGet
			data.Path = []string{"ping"}
			return nil
		},
		DecodeFunc: func(data *routing.RequestData) (pingRoute, error) {
			if data.Method == http.MethodGet && len(data.Path) == 1 && data.Path[0] == "ping" {
				return pingRoute{}, nil
			}
			return pingRoute{}, errNotPing
		},
	}

	return routing.NewAuthenticatedCodec[credential.Bearer, pingRoute](
		base, credential.BearerCodec{}, apiCodec)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
