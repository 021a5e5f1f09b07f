package hash

import (
	"context"
	"fmt"
)

// Strategy defines which hashing algorithm to use.
type Strategy string

const (
	StrategyBcrypt Strategy = "bcrypt"
)

// Options configures the hasher.
type Options struct {
	// Strategy selects the hashing algorithm.
	Strategy Strategy

	// Cost is the bcrypt work factor used for new hashes.
	// Zero uses bcrypt.DefaultCost (10).
	Cost int
}

// Hasher is the interface consumers depend on for hashing and comparing passwords.
// Implementations must be safe for concurrent use.
type Hasher interface {
	// Hash returns a freshly salted hash of the plaintext at the configured cost.
	Hash(ctx context.Context, plaintext string) (Password, error)

	// Compare checks whether the plaintext matches the hashed value.
	// Returns nil on success or ErrMismatchedPassword.
	Compare(ctx context.Context, hashed Password, plaintext string) error

	// NeedsRehash reports whether hashed was made with a different cost than configured.
	NeedsRehash(hashed Password) bool

	// Parse parses a stored hash string.
	Parse(hashed string) (Password, error)
}

// New creates a Hasher based on the provided options.
// Returns an error if the strategy is unknown or configuration is invalid.
func New(opts Options) (Hasher, error) {
	switch opts.Strategy {
	case StrategyBcrypt:
		return NewBcrypt(opts.Cost)
	default:
		return nil, fmt.Errorf("hash: unknown strategy %q", opts.Strategy)
	}
}
