// Package jwtx signs and verifies the bearer tokens callers present to the
// service. The token's subject is the caller identity every operation runs
// as; issuing these tokens is the job of an external identity provider, so
// the service itself only needs a shared-secret HS256 verifier (plus a
// signer for tests and the dev token tool).
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used by the signer when no TTL is configured.
const DefaultTokenTTL = 24 * time.Hour

var (
	ErrInvalidToken   = errors.New("jwtx: invalid token")
	ErrTokenExpired   = errors.New("jwtx: token expired")
	ErrIssuerMismatch = errors.New("jwtx: issuer mismatch")
	ErrEmptySubject   = errors.New("jwtx: empty subject")
)

// Claims is the verified content of a caller token.
type Claims struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ValidateExpiry rejects claims whose expiry has passed.
func (c Claims) ValidateExpiry() error {
	if !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}

// Signer mints HS256 caller tokens.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewSigner(secret []byte, issuer string, ttl time.Duration) *Signer {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &Signer{secret: secret, issuer: issuer, ttl: ttl}
}

// Sign returns a signed token whose subject is the given identity.
func (s *Signer) Sign(subject string) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return token.SignedString(s.secret)
}

// Verifier checks HS256 caller tokens against the shared secret.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret []byte, issuer string) *Verifier {
	return &Verifier{secret: secret, issuer: issuer}
}

// Verify parses and validates raw, returning its claims.
func (v *Verifier) Verify(raw string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrInvalidToken
	}

	rc, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if rc.Subject == "" {
		return Claims{}, ErrEmptySubject
	}
	if v.issuer != "" && rc.Issuer != v.issuer {
		return Claims{}, ErrIssuerMismatch
	}

	claims := Claims{
		Subject: rc.Subject,
		Issuer:  rc.Issuer,
	}
	if rc.IssuedAt != nil {
		claims.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		claims.ExpiresAt = rc.ExpiresAt.Time
	}
	return claims, nil
}
