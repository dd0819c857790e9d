// Package token implements the session token service on top of signed JWTs.
//
// Tokens are stateless: a token is valid exactly when its signature checks
// out against the configured secret and its expiry lies in the future.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds token signing configuration.
type Config struct {
	Secret string
	TTL    time.Duration
}

// Service issues and verifies session tokens. Implements ports.TokenService.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// New creates a token service.
func New(cfg Config) *Service {
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// Issue produces a signed token embedding the user id as the subject,
// valid for the configured TTL from now.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
// Malformed tokens, wrong signatures, and expired tokens are all a single
// error outcome; no further detail is surfaced.
func (s *Service) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if !tok.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}
