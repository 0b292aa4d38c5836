package auth

import (
	"context"
	"time"
)

// TokenLifetime is how long an issued session token stays valid.
const TokenLifetime = 6 * time.Hour

// MinSecretLength is the minimum accepted length of the signing secret.
const MinSecretLength = 32

// Identity is what a session token asserts about its bearer.
type Identity struct {
	UserID string
	Email  string
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue creates a signed token for identity that expires TokenLifetime from now.
	Issue(ctx context.Context, identity Identity) (string, error)

	// Verify checks the signature and expiry of token and returns its claims.
	// Returns ErrExpiredToken once the token is past expiry, and
	// ErrInvalidToken for every other failure.
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Claims are the verified contents of a session token.
type Claims struct {
	UserID string
	Email  string

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// Identity returns the identity asserted by the claims.
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Email: c.Email}
}
