// Package auth provides the application-level login collaborator. The
// verification mechanism is a black box to the session; any non-empty
// principal it yields counts as a valid login proof.
package auth

import (
	"context"
	"crypto/subtle"

	"github.com/pkg/errors"
)

// ErrInvalidCredential is returned when a credential does not verify
var ErrInvalidCredential = errors.New("invalid credential")

// TokenVerifier verifies a pre-shared token and yields the configured
// principal. It stands in for passkey/sso verifiers that expose the same
// credential-in, principal-out contract.
type TokenVerifier struct {
	token     string
	principal string
}

// NewTokenVerifier returns a verifier accepting the given token
func NewTokenVerifier(token, principal string) (TokenVerifier, error) {
	if token == "" {
		return TokenVerifier{}, errors.New("token must not be empty")
	}
	if principal == "" {
		return TokenVerifier{}, errors.New("principal must not be empty")
	}

	return TokenVerifier{token: token, principal: principal}, nil
}

// Verify checks the credential and returns the verified principal
func (v TokenVerifier) Verify(_ context.Context, credential string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(v.token), []byte(credential)) != 1 {
		return "", ErrInvalidCredential
	}

	return v.principal, nil
}
