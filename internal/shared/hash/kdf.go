package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/blowfish"
)

// KDF is the bcrypt key derivation primitive the Password codec is built on.
// Implementations must be safe for concurrent use.
type KDF interface {
	// HashSecret returns a complete bcrypt hash string with a fresh random salt.
	HashSecret(password string, cost int) (string, error)

	// DeriveDigest returns the raw 24-byte digest for password under the
	// encoded 22-character salt and cost.
	DeriveDigest(password, salt string, cost int) ([]byte, error)

	// CostRange returns the inclusive range of accepted work factors.
	CostRange() (min, max int)

	// DefaultCost is used when no cost is requested explicitly.
	DefaultCost() int
}

var _ KDF = (*bcryptKDF)(nil)

var magicCipherData = []byte("OrpheanBeholderScryDoubt")

type bcryptKDF struct {
	defaultCost int
}

// NewBcryptKDF returns the KDF backed by golang.org/x/crypto.
// If defaultCost is zero, bcrypt.DefaultCost (10) is used.
func NewBcryptKDF(defaultCost int) KDF {
	if defaultCost == 0 {
		defaultCost = bcrypt.DefaultCost
	}
	return &bcryptKDF{defaultCost: defaultCost}
}

func (k *bcryptKDF) CostRange() (int, int) { return bcrypt.MinCost, bcrypt.MaxCost }

func (k *bcryptKDF) DefaultCost() int { return k.defaultCost }

func (k *bcryptKDF) HashSecret(password string, cost int) (string, error) {
	// GenerateFromPassword silently raises low costs to the default; reject them instead.
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", bcrypt.InvalidCostError(cost)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (k *bcryptKDF) DeriveDigest(password, salt string, cost int) ([]byte, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, bcrypt.InvalidCostError(cost)
	}

	rawSalt, err := Decode(salt)
	if err != nil {
		return nil, err
	}
	if len(rawSalt) != rawSaltSize {
		return nil, fmt.Errorf("%w: salt decodes to %d bytes, want %d", ErrInvalidEncoding, len(rawSalt), rawSaltSize)
	}

	// The trailing NUL takes part in key expansion in every C bcrypt.
	key := append([]byte(password), 0)

	c, err := blowfish.NewSaltedCipher(key, rawSalt)
	if err != nil {
		return nil, fmt.Errorf("hash: blowfish setup failed: %w", err)
	}

	rounds := uint64(1) << uint(cost)
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(key, c)
		blowfish.ExpandKey(rawSalt, c)
	}

	digest := make([]byte, len(magicCipherData))
	copy(digest, magicCipherData)
	for i := 0; i < len(digest); i += 8 {
		for j := 0; j < 64; j++ {
			c.Encrypt(digest[i:i+8], digest[i:i+8])
		}
	}

	return digest, nil
}
