package client_test

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarluq/authroute/client"
	"github.com/omarluq/authroute/credential"
	"github.com/omarluq/authroute/routing"
)

// userRoute mirrors a tiny API surface: GET /users/{id}.
type userRoute struct {
	ID string
}

func userCodec() routing.Codec[userRoute] {
	return routing.CodecFunc[userRoute]{
		EncodeFunc: func(data *routing.RequestData, route userRoute) error {
			data.Method = http.MethodGet
			data.Path = []string{"users", route.ID}
			return nil
		},
		DecodeFunc: func(data *routing.RequestData) (userRoute, error) {
			if data.Method == http.MethodGet && len(data.Path) == 2 && data.Path[0] == "users" {
				return userRoute{ID: data.Path[1]}, nil
			}
			return userRoute{}, errors.New("no route matched")
		},
	}
}

// userClient is a sample transport client built by the facade's factory.
type userClient struct {
	makeRequest client.MakeRequest[userRoute]
}

func (c *userClient) GetUserRequest(id string) (*http.Request, error) {
	return c.makeRequest(userRoute{ID: id})
}

func buildUserClient(makeRequest client.MakeRequest[userRoute]) *userClient {
	return &userClient{makeRequest: makeRequest}
}

// TestFacade_RequestsAreAuthenticated verifies every request built through
// the client carries the Authorization header.
func TestFacade_RequestsAreAuthenticated(t *testing.T) {
	t.Parallel()

	facade, err := client.NewBearer[userRoute]("https://api.example.com", "tok123", userCodec(), buildUserClient)
	require.NoError(t, err)

	req, err := facade.Client().GetUserRequest("42")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", req.Header.Get("Authorization"))
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "https://api.example.com/users/42", req.URL.String())
}

// TestFacade_ClientEquivalence verifies facade-level MakeRequest and the
// built client produce byte-identical requests for equal inputs.
func TestFacade_ClientEquivalence(t *testing.T) {
	t.Parallel()

	facade, err := client.NewBearer[userRoute]("https://api.example.com", "tok123", userCodec(), buildUserClient)
	require.NoError(t, err)

	viaFacade, err := facade.MakeRequest(userRoute{ID: "42"})
	require.NoError(t, err)

	viaClient, err := facade.Client().GetUserRequest("42")
	require.NoError(t, err)

	facadeBytes, err := httputil.DumpRequestOut(viaFacade, true)
	require.NoError(t, err)
	clientBytes, err := httputil.DumpRequestOut(viaClient, true)
	require.NoError(t, err)

	assert.Equal(t, facadeBytes, clientBytes)
}

// TestFacade_BasicCredential verifies the facade works with Basic auth via
// the generic constructor.
func TestFacade_BasicCredential(t *testing.T) {
	t.Parallel()

	auth := credential.NewBasic("api", "secret-key")

	facade, err := client.New[credential.Basic]("https://api.example.com", auth,
		credential.BasicCodec{}, userCodec(), buildUserClient)
	require.NoError(t, err)

	req, err := facade.MakeRequest(userRoute{ID: "7"})
	require.NoError(t, err)

	assert.Equal(t, auth.HeaderValue(), req.Header.Get("Authorization"))
}

// TestNewBearer_EmptyToken verifies facade construction fails with the same
// error kind as credential construction.
func TestNewBearer_EmptyToken(t *testing.T) {
	t.Parallel()

	_, err := client.NewBearer[userRoute]("https://api.example.com", "", userCodec(), buildUserClient)

	require.Error(t, err)
	assert.ErrorIs(t, err, credential.ErrEmptyToken)

	var validationErr *credential.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

// TestNew_InvalidBaseURL verifies malformed and relative base URLs are
// rejected at construction with a request-construction error.
func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "unparseable", baseURL: "https://api.example.com/%zz"},
		{name: "relative", baseURL: "/just/a/path"},
		{name: "empty", baseURL: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := client.NewBearer[userRoute](tt.baseURL, "tok", userCodec(), buildUserClient)

			var constructionErr *client.RequestConstructionError
			require.ErrorAs(t, err, &constructionErr)
		})
	}
}

// TestFacade_EncodeErrorPropagates verifies route encode failures surface
// as encode errors, not construction errors.
func TestFacade_EncodeErrorPropagates(t *testing.T) {
	t.Parallel()

	encodeFailed := errors.New("cannot print route")
	failing := routing.CodecFunc[userRoute]{
		EncodeFunc: func(*routing.RequestData, userRoute) error { return encodeFailed },
		DecodeFunc: func(*routing.RequestData) (userRoute, error) { return userRoute{}, encodeFailed },
	}

	facade, err := client.NewBearer[userRoute]("https://api.example.com", "tok", failing, buildUserClient)
	require.NoError(t, err)

	_, err = facade.MakeRequest(userRoute{ID: "42"})

	var encodeErr *routing.EncodeError
	require.ErrorAs(t, err, &encodeErr)
	assert.ErrorIs(t, err, encodeFailed)
}
