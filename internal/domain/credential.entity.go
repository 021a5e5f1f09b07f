package domain

import (
	"time"

	"github.com/joshuarp/passhash-api/internal/shared/hash"
)

const CredentialStatusActive = "active"

type Credential struct {
	ID           string
	Email        string
	PasswordHash hash.Password
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
