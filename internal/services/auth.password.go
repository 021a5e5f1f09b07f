package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuarp/passhash-api/internal/domain"
	"github.com/joshuarp/passhash-api/internal/domain/vo"
	sharedhash "github.com/joshuarp/passhash-api/internal/shared/hash"
)

type AuthPasswordRepository interface {
	GetCredentialByID(ctx context.Context, id string) (domain.Credential, error)
	UpdatePasswordHash(ctx context.Context, id string, passwordHash sharedhash.Password) error
}

type AuthPasswordService struct {
	repository AuthPasswordRepository
	hasher     sharedhash.Hasher
	logger     *slog.Logger
}

func NewAuthPasswordService(
	repository AuthPasswordRepository,
	hasher sharedhash.Hasher,
	logger *slog.Logger,
) *AuthPasswordService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthPasswordService{
		repository: repository,
		hasher:     hasher,
		logger:     logger,
	}
}

// ChangePassword replaces the stored hash after re-checking the current password.
// An unknown credential reports ErrInvalidCredentials.
func (s *AuthPasswordService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if userID == "" || currentPassword == "" {
		return vo.ErrInvalidCredentials
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	credential, err := s.repository.GetCredentialByID(ctx, userID)
	if err != nil {
		if errors.Is(err, vo.ErrCredentialNotFound) {
			return vo.ErrInvalidCredentials
		}
		return err
	}

	if err := s.hasher.Compare(ctx, credential.PasswordHash, currentPassword); err != nil {
		return vo.ErrInvalidCredentials
	}

	passwordHash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("service: failed to hash password: %w", err)
	}

	if err := s.repository.UpdatePasswordHash(ctx, credential.ID, passwordHash); err != nil {
		return err
	}

	s.logger.Info("password changed", "user_id", credential.ID, "cost", passwordHash.Cost())
	return nil
}
