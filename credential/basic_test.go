package credential_test

import (
	"encoding/base64"
	"errors"
	"net/mail"
	"testing"

	"github.com/omarluq/authroute/credential"
)

// TestBasic_Encoded verifies the wire-level base64 payload.
func TestBasic_Encoded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		want     string
	}{
		{
			name:     "api key pair",
			username: "api",
			password: "secret-key",
			want:     base64.StdEncoding.EncodeToString([]byte("api:secret-key")),
		},
		{
			name:     "empty username and password",
			username: "",
			password: "",
			want:     base64.StdEncoding.EncodeToString([]byte(":")),
		},
		{
			name:     "password containing colons",
			username: "user",
			password: "pa:ss:wd",
			want:     base64.StdEncoding.EncodeToString([]byte("user:pa:ss:wd")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cred := credential.NewBasic(tt.username, tt.password)
			if got := cred.Encoded(); got != tt.want {
				t.Errorf("Encoded() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestBasic_HeaderValue verifies the full Authorization header value.
func TestBasic_HeaderValue(t *testing.T) {
	t.Parallel()

	cred := credential.NewBasic("api", "secret-key")
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("api:secret-key"))

	if got := cred.HeaderValue(); got != want {
		t.Errorf("HeaderValue() = %q, want %q", got, want)
	}
}

// TestNewBasicFromEmail verifies the email address's canonical form becomes
// the username.
func TestNewBasicFromEmail(t *testing.T) {
	t.Parallel()

	address, err := mail.ParseAddress("Jamie Doe <jamie@example.com>")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}

	cred := credential.NewBasicFromEmail(address, "hunter2")

	if cred.Username != "jamie@example.com" {
		t.Errorf("Username = %q, want %q", cred.Username, "jamie@example.com")
	}
	if cred.Password != "hunter2" {
		t.Errorf("Password = %q, want %q", cred.Password, "hunter2")
	}
}

// TestParseBasic tests decoding of Basic header values.
func TestParseBasic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		value        string
		want         credential.Basic
		wantErr      error
		wantSentinel error
	}{
		{
			name:  "valid credentials",
			value: "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass")),
			want:  credential.NewBasic("user", "pass"),
		},
		{
			name:  "split on first colon only",
			value: "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pa:ss")),
			want:  credential.NewBasic("user", "pa:ss"),
		},
		{
			name:  "empty username and password",
			value: "Basic " + base64.StdEncoding.EncodeToString([]byte(":")),
			want:  credential.NewBasic("", ""),
		},
		{
			name:         "missing prefix",
			value:        base64.StdEncoding.EncodeToString([]byte("user:pass")),
			wantSentinel: credential.ErrPrefixMismatch,
		},
		{
			name:         "bearer prefix instead of basic",
			value:        "Bearer some-token",
			wantSentinel: credential.ErrPrefixMismatch,
		},
		{
			name:         "invalid base64",
			value:        "Basic !!!not-base64!!!",
			wantSentinel: credential.ErrMalformedPayload,
		},
		{
			name:         "no colon in decoded payload",
			value:        "Basic " + base64.StdEncoding.EncodeToString([]byte("no-colon-here")),
			wantSentinel: credential.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := credential.ParseBasic(tt.value)

			if tt.wantSentinel != nil {
				if !errors.Is(err, tt.wantSentinel) {
					t.Fatalf("ParseBasic() error = %v, want %v", err, tt.wantSentinel)
				}

				var decodeErr *credential.DecodeError
				if !errors.As(err, &decodeErr) {
					t.Fatalf("ParseBasic() error type = %T, want *credential.DecodeError", err)
				}
				if decodeErr.Scheme != credential.SchemeBasic {
					t.Errorf("DecodeError.Scheme = %q, want %q", decodeErr.Scheme, credential.SchemeBasic)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseBasic() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseBasic() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestBasic_Redacted verifies passwords never appear in the redacted form.
func TestBasic_Redacted(t *testing.T) {
	t.Parallel()

	cred := credential.NewBasic("user", "super-secret")
	got := cred.Redacted()

	if got != "Basic user:****" {
		t.Errorf("Redacted() = %q, want %q", got, "Basic user:****")
	}
}
