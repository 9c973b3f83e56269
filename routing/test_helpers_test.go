package routing_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/omarluq/authroute/routing"
)

// userRoute is a small application route used across tests:
// GET /users/{id} and POST /users.
type userRoute struct {
	Kind string // "get" or "create"
	ID   string
}

var errNoRouteMatched = errors.New("no route matched")

func newUserCodec() routing.Codec[userRoute] {
	return routing.CodecFunc[userRoute]{
		EncodeFunc: func(data *routing.RequestData, route userRoute) error {
			switch route.Kind {
			case "get":
				data.Method = http.MethodGet
				data.Path = []string{"users", route.ID}
			case "create":
				data.Method = http.MethodPost
				data.Path = []string{"users"}
			default:
				return fmt.Errorf("unknown route kind %q", route.Kind)
			}
			return nil
		},
		DecodeFunc: func(data *routing.RequestData) (userRoute, error) {
			switch {
			case data.Method == http.MethodGet && len(data.Path) == 2 && data.Path[0] == "users":
				return userRoute{Kind: "get", ID: data.Path[1]}, nil
			case data.Method == http.MethodPost && len(data.Path) == 1 && data.Path[0] == "users":
				return userRoute{Kind: "create"}, nil
			default:
				return userRoute{}, errNoRouteMatched
			}
		},
	}
}
