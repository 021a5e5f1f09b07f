package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/joshuarp/passhash-api/internal/domain"
	"github.com/joshuarp/passhash-api/internal/domain/vo"
	sharedhash "github.com/joshuarp/passhash-api/internal/shared/hash"
	shareduid "github.com/joshuarp/passhash-api/internal/shared/uid"
)

const (
	minPasswordBytes = 8
	// bcrypt only reads the first 72 bytes of a password.
	maxPasswordBytes = 72
)

type AuthRegisterRepository interface {
	CreateCredential(ctx context.Context, credential domain.Credential) error
}

type AuthRegisterService struct {
	repository AuthRegisterRepository
	hasher     sharedhash.Hasher
	ids        shareduid.UIDGenerator
	now        func() time.Time
}

func NewAuthRegisterService(
	repository AuthRegisterRepository,
	hasher sharedhash.Hasher,
	ids shareduid.UIDGenerator,
) *AuthRegisterService {
	return &AuthRegisterService{
		repository: repository,
		hasher:     hasher,
		ids:        ids,
		now:        time.Now,
	}
}

func (s *AuthRegisterService) Register(ctx context.Context, email, password string) (vo.Registration, error) {
	normalizedEmail, err := normalizeEmail(email)
	if err != nil {
		return vo.Registration{}, err
	}
	if err := validatePassword(password); err != nil {
		return vo.Registration{}, err
	}

	id, err := s.ids.Generate(ctx)
	if err != nil {
		return vo.Registration{}, fmt.Errorf("service: failed to generate credential id: %w", err)
	}

	passwordHash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return vo.Registration{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	now := s.now().UTC()
	credential := domain.Credential{
		ID:           id,
		Email:        normalizedEmail,
		PasswordHash: passwordHash,
		Status:       domain.CredentialStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repository.CreateCredential(ctx, credential); err != nil {
		return vo.Registration{}, err
	}

	return vo.Registration{
		UserID:    credential.ID,
		Email:     credential.Email,
		CreatedAt: credential.CreatedAt,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.TrimSpace(strings.ToLower(email))
	if normalized == "" {
		return "", vo.ErrInvalidEmail
	}
	address, err := mail.ParseAddress(normalized)
	if err != nil || address.Address != normalized {
		return "", vo.ErrInvalidEmail
	}
	return normalized, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordBytes || len(password) > maxPasswordBytes {
		return vo.ErrWeakPassword
	}
	return nil
}
