package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuarp/passhash-api/internal/domain/vo"
	sharedhash "github.com/joshuarp/passhash-api/internal/shared/hash"
)

// DefaultMaxVerifyCost bounds Verify when no limit is configured.
const DefaultMaxVerifyCost = 14

type HashInspectService struct {
	hasher        sharedhash.Hasher
	maxVerifyCost int
}

// NewHashInspectService builds the service. maxVerifyCost caps the cost Verify
// will run; zero or less selects DefaultMaxVerifyCost.
func NewHashInspectService(hasher sharedhash.Hasher, maxVerifyCost int) *HashInspectService {
	if maxVerifyCost <= 0 {
		maxVerifyCost = DefaultMaxVerifyCost
	}
	return &HashInspectService{hasher: hasher, maxVerifyCost: maxVerifyCost}
}

// Inspect parses a stored bcrypt string and reports its fields.
// Malformed input surfaces as *sharedhash.FormatError.
func (s *HashInspectService) Inspect(_ context.Context, hashed string) (vo.HashInspection, error) {
	password, err := s.hasher.Parse(hashed)
	if err != nil {
		return vo.HashInspection{}, err
	}

	return vo.HashInspection{
		Version:     password.Version(),
		Cost:        password.Cost(),
		Salt:        password.Salt(),
		Digest:      password.Digest(),
		NeedsRehash: s.hasher.NeedsRehash(password),
	}, nil
}

// Verify reports whether candidate matches hashed. A mismatch is a result,
// not an error. Hashes above the configured cost fail with vo.ErrHashCostTooHigh
// before any key derivation runs.
func (s *HashInspectService) Verify(ctx context.Context, hashed, candidate string) (vo.HashVerification, error) {
	password, err := s.hasher.Parse(hashed)
	if err != nil {
		return vo.HashVerification{}, err
	}
	if password.Cost() > s.maxVerifyCost {
		return vo.HashVerification{}, fmt.Errorf("%w: cost %d, maximum %d", vo.ErrHashCostTooHigh, password.Cost(), s.maxVerifyCost)
	}

	err = s.hasher.Compare(ctx, password, candidate)
	switch {
	case err == nil:
		return vo.HashVerification{Match: true}, nil
	case errors.Is(err, sharedhash.ErrMismatchedPassword):
		return vo.HashVerification{Match: false}, nil
	default:
		return vo.HashVerification{}, fmt.Errorf("service: failed to verify hash: %w", err)
	}
}
