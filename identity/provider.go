// Package identity fronts the external identity provider that owns
// credentials. The backend never stores passwords of its own; it creates
// accounts, verifies provider-issued tokens, and deletes accounts through
// this port. A hosted provider drops in behind the same interface.
package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("identity user not found")
)

// Token is the verified content of a provider-issued token.
type Token struct {
	UID   string
	Email string
}

type Provider interface {
	// SignUp registers an account and returns the provider's subject id.
	SignUp(ctx context.Context, email, password string) (string, error)
	// SignIn checks credentials and issues a token.
	SignIn(ctx context.Context, email, password string) (string, error)
	// VerifyToken validates a token server-side.
	VerifyToken(ctx context.Context, token string) (*Token, error)
	// DeleteUser removes the account.
	DeleteUser(ctx context.Context, uid string) error
}
