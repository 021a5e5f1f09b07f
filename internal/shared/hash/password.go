package hash

import (
	"crypto/subtle"
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"strings"
)

const (
	saltLength    = 22
	digestLength  = 31
	rawSaltSize   = 16
	rawDigestSize = 23
)

var supportedVersions = map[string]struct{}{
	"2":  {},
	"2a": {},
	"2b": {},
	"2y": {},
}

var (
	_ sql.Scanner              = (*Password)(nil)
	_ driver.Valuer            = Password{}
	_ encoding.TextMarshaler   = Password{}
	_ encoding.TextUnmarshaler = (*Password)(nil)
)

// Password is a parsed bcrypt hash string of the form
// $<version>$<cost>$<salt:22><digest:31>.
//
// A Password is immutable and safe for concurrent use. The zero value holds no
// hash and never verifies.
type Password struct {
	raw     string
	version string
	cost    int
	salt    string
	digest  string
	kdf     KDF
}

// Scheme parses and creates Password values against one KDF.
type Scheme struct {
	kdf KDF
}

var defaultScheme = NewScheme(nil)

// NewScheme returns a Scheme over kdf. A nil kdf selects the x/crypto backed KDF.
func NewScheme(kdf KDF) *Scheme {
	if kdf == nil {
		kdf = NewBcryptKDF(0)
	}
	return &Scheme{kdf: kdf}
}

// Parse parses hashed with the default Scheme.
func Parse(hashed string) (Password, error) {
	return defaultScheme.Parse(hashed)
}

// Create hashes password with the default Scheme. A zero cost selects the KDF default.
func Create(password string, cost int) (Password, error) {
	return defaultScheme.Create(password, cost)
}

// Parse splits hashed into its fields and validates them.
// Every failure is a *FormatError; nothing is returned on failure.
func (s *Scheme) Parse(hashed string) (Password, error) {
	if strings.Count(hashed, "$") != 3 || hashed[0] != '$' {
		return Password{}, formatError("invalid hash string")
	}

	var version string
	switch hashed[2] {
	case 'a', 'b', 'y':
		version = hashed[1:3]
	case '$':
		version = hashed[1:2]
	default:
		version = hashed[1:3]
	}
	if _, ok := supportedVersions[version]; !ok {
		return Password{}, formatError("invalid hash version")
	}

	pos := 1 + len(version)
	if hashed[pos] != '$' {
		return Password{}, formatError("invalid hash version")
	}
	pos++

	end := pos + strings.IndexByte(hashed[pos:], '$')
	costField := hashed[pos:end]
	cost, ok := parseCost(costField)
	if !ok {
		return Password{}, formatError("invalid cost: " + costField)
	}
	minCost, maxCost := s.kdf.CostRange()
	if cost < minCost || cost > maxCost {
		return Password{}, formatError(fmt.Sprintf("invalid cost: %d", cost))
	}

	body := hashed[end+1:]
	if len(body) != saltLength+digestLength {
		return Password{}, formatError(fmt.Sprintf("invalid hash length: salt and digest span %d characters, want %d", len(body), saltLength+digestLength))
	}

	salt, digest := body[:saltLength], body[saltLength:]
	if raw, err := Decode(salt); err != nil || len(raw) != rawSaltSize {
		return Password{}, formatError("invalid salt encoding")
	}
	if raw, err := Decode(digest); err != nil || len(raw) != rawDigestSize {
		return Password{}, formatError("invalid digest encoding")
	}

	return Password{
		raw:     hashed,
		version: version,
		cost:    cost,
		salt:    salt,
		digest:  digest,
		kdf:     s.kdf,
	}, nil
}

// Create asks the KDF for a fresh hash of password and parses it.
// A zero cost selects the KDF default. KDF errors are returned unchanged.
func (s *Scheme) Create(password string, cost int) (Password, error) {
	if cost == 0 {
		cost = s.kdf.DefaultCost()
	}
	hashed, err := s.kdf.HashSecret(password, cost)
	if err != nil {
		return Password{}, err
	}
	return s.Parse(hashed)
}

// parseCost reads a fixed-width two digit decimal field.
func parseCost(field string) (int, bool) {
	if len(field) != 2 {
		return 0, false
	}
	cost := 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		cost = cost*10 + int(c-'0')
	}
	return cost, true
}

func (p Password) Version() string { return p.version }

func (p Password) Cost() int { return p.cost }

// Salt returns the 22 character encoded salt.
func (p Password) Salt() string { return p.salt }

// Digest returns the 31 character encoded digest.
func (p Password) Digest() string { return p.digest }

// String returns the hash exactly as it was parsed.
func (p Password) String() string { return p.raw }

func (p Password) IsZero() bool { return p.raw == "" }

// Equal reports whether both values were parsed from the same string.
func (p Password) Equal(other Password) bool { return p.raw == other.raw }

// DecodedSalt returns the 16 raw salt bytes.
func (p Password) DecodedSalt() ([]byte, error) { return Decode(p.salt) }

// DecodedDigest returns the 23 raw digest bytes.
func (p Password) DecodedDigest() ([]byte, error) { return Decode(p.digest) }

// Verify reports whether candidate hashes to the stored digest.
// The digests are compared in constant time. A wrong password is simply false.
func (p Password) Verify(candidate string) bool {
	if p.IsZero() {
		return false
	}

	kdf := p.kdf
	if kdf == nil {
		kdf = defaultScheme.kdf
	}

	raw, err := kdf.DeriveDigest(candidate, p.salt, p.cost)
	if err != nil {
		return false
	}

	computed := Encode(raw)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(p.digest)) == 1
}

func (p Password) MarshalText() ([]byte, error) {
	return []byte(p.raw), nil
}

func (p *Password) UnmarshalText(text []byte) error {
	parsed, err := defaultScheme.Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Scan parses a password hash column. NULL is rejected.
func (p *Password) Scan(src any) error {
	var hashed string
	switch v := src.(type) {
	case string:
		hashed = v
	case []byte:
		hashed = string(v)
	case nil:
		return fmt.Errorf("%w: NULL password hash", ErrInvalidHash)
	default:
		return fmt.Errorf("hash: cannot scan %T into Password", src)
	}

	parsed, err := defaultScheme.Parse(hashed)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value stores the hash verbatim; the zero value is stored as NULL.
func (p Password) Value() (driver.Value, error) {
	if p.IsZero() {
		return nil, nil
	}
	return p.raw, nil
}
