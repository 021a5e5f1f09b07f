package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var _ TokenManager = (*hmacManager)(nil)

type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwtlib.RegisteredClaims
}

type hmacManager struct {
	secret []byte
	method jwtlib.SigningMethod
	issuer string
	ttl    time.Duration
	parser *jwtlib.Parser
	now    func() time.Time
}

// NewHMAC creates an HMAC-based TokenManager.
func NewHMAC(opts Options) (TokenManager, error) {
	if len(opts.Secret) < 32 {
		return nil, fmt.Errorf("jwt: HMAC secret must be at least 32 bytes, got %d", len(opts.Secret))
	}
	if opts.TTL <= 0 {
		return nil, errors.New("jwt: token TTL must be positive")
	}

	method, err := resolveHMACMethod(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	parserOpts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{method.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithIssuedAt(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwtlib.WithIssuer(opts.Issuer))
	}
	if opts.Leeway > 0 {
		parserOpts = append(parserOpts, jwtlib.WithLeeway(opts.Leeway))
	}

	return &hmacManager{
		secret: opts.Secret,
		method: method,
		issuer: opts.Issuer,
		ttl:    opts.TTL,
		parser: jwtlib.NewParser(parserOpts...),
		now:    time.Now,
	}, nil
}

func resolveHMACMethod(alg string) (jwtlib.SigningMethod, error) {
	switch alg {
	case "", "HS256":
		return jwtlib.SigningMethodHS256, nil
	case "HS384":
		return jwtlib.SigningMethodHS384, nil
	case "HS512":
		return jwtlib.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("jwt: unsupported HMAC algorithm %q", alg)
	}
}

func (m *hmacManager) Sign(_ context.Context, claims Claims) (string, error) {
	if claims.Subject == "" {
		return "", errors.New("jwt: subject is required")
	}

	issuedAt := claims.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = m.now()
	}
	expiresAt := claims.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = issuedAt.Add(m.ttl)
	}
	issuer := claims.Issuer
	if issuer == "" {
		issuer = m.issuer
	}

	token := jwtlib.NewWithClaims(m.method, tokenClaims{
		Email: claims.Email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   claims.Subject,
			Issuer:    issuer,
			ID:        claims.ID,
			IssuedAt:  jwtlib.NewNumericDate(issuedAt),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *hmacManager) Verify(_ context.Context, tokenString string) (*Claims, error) {
	parsed := &tokenClaims{}
	if _, err := m.parser.ParseWithClaims(tokenString, parsed, func(*jwtlib.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return nil, fmt.Errorf("jwt: token validation failed: %w", err)
	}
	if parsed.Subject == "" {
		return nil, errors.New("jwt: token has no subject")
	}

	claims := &Claims{
		Subject: parsed.Subject,
		Email:   parsed.Email,
		Issuer:  parsed.Issuer,
		ID:      parsed.ID,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}
