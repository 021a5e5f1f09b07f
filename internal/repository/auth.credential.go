package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/passhash-api/internal/domain"
	"github.com/joshuarp/passhash-api/internal/domain/vo"
	"github.com/joshuarp/passhash-api/internal/shared/hash"
)

const uniqueViolation = "23505"

type CredentialRepository struct {
	db *sqlx.DB
}

// password_hash is scanned straight into hash.Password, so a malformed
// stored hash fails the row instead of surfacing later during login.
type credentialRow struct {
	ID           string        `db:"id"`
	Email        string        `db:"email"`
	PasswordHash hash.Password `db:"password_hash"`
	Status       string        `db:"status"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

func (r credentialRow) toDomain() domain.Credential {
	return domain.Credential{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func NewCredentialRepository(db *sqlx.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

const selectCredential = `
	SELECT id::text AS id, email, password_hash, status, created_at, updated_at
	FROM credentials
`

func (r *CredentialRepository) GetCredentialByEmail(ctx context.Context, email string) (domain.Credential, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	if normalizedEmail == "" {
		return domain.Credential{}, vo.ErrInvalidCredentials
	}

	var row credentialRow
	err := r.db.GetContext(ctx, &row, selectCredential+`WHERE lower(email) = $1 LIMIT 1`, normalizedEmail)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.Credential{}, vo.ErrInvalidCredentials
	case err != nil:
		return domain.Credential{}, fmt.Errorf("repository: get credential by email failed: %w", err)
	}

	if row.Status != domain.CredentialStatusActive {
		return domain.Credential{}, vo.ErrInvalidCredentials
	}

	return row.toDomain(), nil
}

func (r *CredentialRepository) GetCredentialByID(ctx context.Context, id string) (domain.Credential, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Credential{}, vo.ErrCredentialNotFound
	}

	var row credentialRow
	err := r.db.GetContext(ctx, &row, selectCredential+`WHERE id::text = $1 LIMIT 1`, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.Credential{}, vo.ErrCredentialNotFound
	case err != nil:
		return domain.Credential{}, fmt.Errorf("repository: get credential by id failed: %w", err)
	}

	if row.Status != domain.CredentialStatusActive {
		return domain.Credential{}, vo.ErrCredentialNotFound
	}

	return row.toDomain(), nil
}

func (r *CredentialRepository) CreateCredential(ctx context.Context, credential domain.Credential) error {
	if credential.PasswordHash.IsZero() {
		return errors.New("repository: credential password hash is empty")
	}

	const query = `
		INSERT INTO credentials (id, email, password_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		credential.ID,
		strings.TrimSpace(strings.ToLower(credential.Email)),
		credential.PasswordHash,
		credential.Status,
		credential.CreatedAt,
		credential.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return vo.ErrEmailTaken
		}
		return fmt.Errorf("repository: create credential failed: %w", err)
	}

	return nil
}

func (r *CredentialRepository) UpdatePasswordHash(ctx context.Context, id string, passwordHash hash.Password) error {
	if passwordHash.IsZero() {
		return errors.New("repository: credential password hash is empty")
	}

	const query = `
		UPDATE credentials
		SET password_hash = $1, updated_at = now()
		WHERE id::text = $2
	`

	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("repository: update password hash failed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: update password hash rows affected: %w", err)
	}
	if affected == 0 {
		return vo.ErrCredentialNotFound
	}

	return nil
}
