// Package jwt issues and validates the bearer tokens handed out at login.
package jwt

import (
	"context"
	"fmt"
	"time"
)

// Strategy defines which signing algorithm family to use.
type Strategy string

const StrategyHMAC Strategy = "hmac"

// Options configures the token manager.
type Options struct {
	Strategy Strategy

	// Secret is the shared HMAC key. Must be at least 32 bytes.
	Secret []byte

	// Algorithm is one of "HS256" (default), "HS384", "HS512".
	Algorithm string

	// Issuer is stamped on signed tokens and required on verified ones.
	Issuer string

	// TTL determines the "exp" claim. Must be positive.
	TTL time.Duration

	// Leeway tolerates clock skew when validating time based claims.
	Leeway time.Duration
}

// Claims is the library-agnostic view of a token.
type Claims struct {
	// Subject is the credential ID.
	Subject string

	// Email is the login the token was issued for.
	Email string

	Issuer    string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Signer interface {
	// Sign creates a signed token. IssuedAt, ExpiresAt and Issuer are
	// filled from Options when zero.
	Sign(ctx context.Context, claims Claims) (string, error)
}

type Verifier interface {
	// Verify parses and validates the token string, rejecting tokens that
	// are expired, carry the wrong issuer, or fail signature checks.
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// TokenManager combines signing and verification capabilities.
// Implementations must be safe for concurrent use.
type TokenManager interface {
	Signer
	Verifier
}

// New creates a TokenManager based on the provided options.
func New(opts Options) (TokenManager, error) {
	switch opts.Strategy {
	case StrategyHMAC:
		return NewHMAC(opts)
	default:
		return nil, fmt.Errorf("jwt: unknown strategy %q", opts.Strategy)
	}
}
