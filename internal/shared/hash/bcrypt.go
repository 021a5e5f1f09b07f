package hash

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var _ Hasher = (*bcryptHasher)(nil)

type bcryptHasher struct {
	cost   int
	scheme *Scheme
}

// NewBcrypt creates a bcrypt-based Hasher.
// If cost is zero, bcrypt.DefaultCost (10) is used.
// Cost must be between bcrypt.MinCost (4) and bcrypt.MaxCost (31).
func NewBcrypt(cost int) (Hasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("hash: bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{cost: cost, scheme: NewScheme(NewBcryptKDF(cost))}, nil
}

func (h *bcryptHasher) Hash(ctx context.Context, plaintext string) (Password, error) {
	if err := ctx.Err(); err != nil {
		return Password{}, fmt.Errorf("hash: %w", err)
	}
	hashed, err := h.scheme.Create(plaintext, h.cost)
	if err != nil {
		return Password{}, fmt.Errorf("hash: bcrypt hashing failed: %w", err)
	}
	return hashed, nil
}

func (h *bcryptHasher) Compare(ctx context.Context, hashed Password, plaintext string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("hash: %w", err)
	}
	if hashed.IsZero() {
		return fmt.Errorf("%w: empty password hash", ErrInvalidHash)
	}
	if !hashed.Verify(plaintext) {
		return ErrMismatchedPassword
	}
	return nil
}

func (h *bcryptHasher) NeedsRehash(hashed Password) bool {
	return hashed.Cost() != h.cost
}

func (h *bcryptHasher) Parse(hashed string) (Password, error) {
	return h.scheme.Parse(hashed)
}
