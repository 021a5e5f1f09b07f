package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/joshuarp/passhash-api/internal/domain"
	"github.com/joshuarp/passhash-api/internal/domain/vo"
	sharedhash "github.com/joshuarp/passhash-api/internal/shared/hash"
	sharedjwt "github.com/joshuarp/passhash-api/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/passhash-api/internal/shared/ratelimit"
)

type AuthLoginRepository interface {
	GetCredentialByEmail(ctx context.Context, email string) (domain.Credential, error)
	UpdatePasswordHash(ctx context.Context, id string, passwordHash sharedhash.Password) error
}

type AuthLoginService struct {
	repository   AuthLoginRepository
	hasher       sharedhash.Hasher
	tokenManager sharedjwt.TokenManager
	attempts     sharedratelimit.Limiter
	logger       *slog.Logger

	decoyOnce sync.Once
	decoy     sharedhash.Password
}

// NewAuthLoginService wires login. attempts counts failed logins per email
// and may be nil to disable lockout.
func NewAuthLoginService(
	repository AuthLoginRepository,
	hasher sharedhash.Hasher,
	tokenManager sharedjwt.TokenManager,
	attempts sharedratelimit.Limiter,
	logger *slog.Logger,
) *AuthLoginService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthLoginService{
		repository:   repository,
		hasher:       hasher,
		tokenManager: tokenManager,
		attempts:     attempts,
		logger:       logger,
	}
}

func (s *AuthLoginService) Login(ctx context.Context, email, password string) (vo.AuthLogin, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	if normalizedEmail == "" || strings.TrimSpace(password) == "" {
		return vo.AuthLogin{}, vo.ErrInvalidCredentials
	}
	attemptKey := "login:" + normalizedEmail

	if s.attempts != nil {
		status, err := s.attempts.Peek(ctx, attemptKey)
		if err != nil {
			return vo.AuthLogin{}, fmt.Errorf("service: failed to check login attempts: %w", err)
		}
		if !status.Allowed {
			return vo.AuthLogin{}, vo.ErrTooManyAttempts
		}
	}

	credential, err := s.repository.GetCredentialByEmail(ctx, normalizedEmail)
	if errors.Is(err, vo.ErrInvalidCredentials) {
		s.compareDecoy(ctx, password)
		s.recordFailure(ctx, attemptKey)
		return vo.AuthLogin{}, err
	}
	if err != nil {
		return vo.AuthLogin{}, err
	}

	if err := s.hasher.Compare(ctx, credential.PasswordHash, password); err != nil {
		s.recordFailure(ctx, attemptKey)
		return vo.AuthLogin{}, vo.ErrInvalidCredentials
	}

	if s.attempts != nil {
		if err := s.attempts.Reset(ctx, attemptKey); err != nil {
			s.logger.Warn("failed to reset login attempts", "user_id", credential.ID, "error", err)
		}
	}

	if s.hasher.NeedsRehash(credential.PasswordHash) {
		s.rehash(ctx, credential, password)
	}

	token, err := s.tokenManager.Sign(ctx, sharedjwt.Claims{Subject: credential.ID, Email: credential.Email})
	if err != nil {
		return vo.AuthLogin{}, fmt.Errorf("service: failed to issue token: %w", err)
	}

	return vo.AuthLogin{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

// compareDecoy runs one comparison at the configured cost so an unknown
// email takes as long as a wrong password.
func (s *AuthLoginService) compareDecoy(ctx context.Context, password string) {
	s.decoyOnce.Do(func() {
		decoy, err := s.hasher.Hash(ctx, "decoy-password-never-matches")
		if err != nil {
			s.logger.Warn("failed to build decoy hash", "error", err)
			return
		}
		s.decoy = decoy
	})
	if s.decoy.IsZero() {
		return
	}
	_ = s.hasher.Compare(ctx, s.decoy, password)
}

func (s *AuthLoginService) recordFailure(ctx context.Context, key string) {
	if s.attempts == nil {
		return
	}
	if _, err := s.attempts.Allow(ctx, key); err != nil {
		s.logger.Warn("failed to record login attempt", "error", err)
	}
}

// rehash upgrades a hash stored under an outdated cost. Failures only cost
// the upgrade, never the login.
func (s *AuthLoginService) rehash(ctx context.Context, credential domain.Credential, password string) {
	upgraded, err := s.hasher.Hash(ctx, password)
	if err != nil {
		s.logger.Warn("password rehash failed", "user_id", credential.ID, "error", err)
		return
	}
	if err := s.repository.UpdatePasswordHash(ctx, credential.ID, upgraded); err != nil {
		s.logger.Warn("password rehash not persisted", "user_id", credential.ID, "error", err)
		return
	}
	s.logger.Info("password rehashed",
		"user_id", credential.ID,
		"from_cost", credential.PasswordHash.Cost(),
		"to_cost", upgraded.Cost(),
	)
}
