// Package auth authenticates requests carrying a Firebase ID token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"firebase.google.com/go/v4/auth"
)

// ErrUnauthenticated wraps every authentication failure.
var ErrUnauthenticated = errors.New("unauthenticated")

type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type Authenticator struct {
	verifier TokenVerifier
}

// New takes the Firebase auth client or anything verifying ID tokens the
// same way.
func New(verifier TokenVerifier) *Authenticator {
	return &Authenticator{verifier: verifier}
}

// Authenticate verifies the bearer token of req and returns its claims.
func (a *Authenticator) Authenticate(req *http.Request) (*auth.Token, error) {
	jwtToken, err := bearerToken(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	token, err := a.verifier.VerifyIDToken(req.Context(), jwtToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return token, nil
}
