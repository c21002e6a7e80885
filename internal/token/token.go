// Package token issues and verifies the signed admin identity assertions
// used by the HTTP API. Tokens are self-contained HS256 JWTs; the server
// keeps no session state, and rotating the signing key invalidates every
// outstanding token at once.
package token

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 24 * time.Hour

var (
	ErrExpired          = errors.New("token expired")
	ErrMalformed        = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
)

type Service struct {
	key []byte
	now func() time.Time
}

// NewService builds a token service around the given signing secret.
// An empty secret gets replaced by a random per-process key, which keeps
// a misconfigured deployment working but logs everyone out on restart.
func NewService(secret string) *Service {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic("token: failed to generate signing key: " + err.Error())
		}
	}
	return &Service{key: key, now: time.Now}
}

// Issue signs a token for subject expiring after ttl. Callers wanting the
// standard lifetime pass DefaultTTL; a zero or negative ttl produces an
// already-expired token, which is occasionally useful in tests.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the token's subject.
// It never consults the credential store; a token stays valid until its
// exp claim passes, even if the account is deactivated in the meantime.
func (s *Service) Verify(tokenStr string) (string, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.key, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrSignatureInvalid
		default:
			return "", ErrMalformed
		}
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return "", ErrMalformed
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrMalformed
	}
	return sub, nil
}
