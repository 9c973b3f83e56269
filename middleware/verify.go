package middleware

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/omarluq/authroute/credential"
)

// Verifier reports whether a decoded credential is acceptable.
// Implementations must not leak timing information about the expected secret.
type Verifier[C any] func(cred C) bool

// VerifyBearer returns a Verifier that accepts Bearer credentials whose
// token matches the expected one.
//
// The expected token is hashed once at creation time; per-request comparison
// runs over SHA-256 digests with subtle.ConstantTimeCompare to prevent
// timing attacks. SHA-256 is appropriate here because tokens are
// high-entropy secrets, not passwords.
func VerifyBearer(expectedToken string) Verifier[credential.Bearer] {
	expectedHash := sha256.Sum256([]byte(expectedToken))

	return func(cred credential.Bearer) bool {
		providedHash := sha256.Sum256([]byte(cred.Token))
		return subtle.ConstantTimeCompare(providedHash[:], expectedHash[:]) == 1
	}
}

// VerifyBasic returns a Verifier that accepts Basic credentials matching the
// expected username and password, compared in constant time over SHA-256
// digests of the individual fields.
func VerifyBasic(username, password string) Verifier[credential.Basic] {
	expectedUser := sha256.Sum256([]byte(username))
	expectedPass := sha256.Sum256([]byte(password))

	return func(cred credential.Basic) bool {
		providedUser := sha256.Sum256([]byte(cred.Username))
		providedPass := sha256.Sum256([]byte(cred.Password))

		userOK := subtle.ConstantTimeCompare(providedUser[:], expectedUser[:])
		passOK := subtle.ConstantTimeCompare(providedPass[:], expectedPass[:])
		return userOK&passOK == 1
	}
}

// VerifyAny returns a Verifier that accepts every decoded credential.
// Useful when the credential is validated by a downstream system.
func VerifyAny[C any]() Verifier[C] {
	return func(C) bool { return true }
}
