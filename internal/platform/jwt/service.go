// Package jwtmw issues and verifies the access tokens that guard the API,
// and provides the Gin middleware enforcing them.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"notes_backend/internal/shared/apperr"
)

var (
	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = apperr.New(apperr.KindUnauthorized, "token expired")

	// ErrInvalidToken is returned when a token cannot be parsed, its
	// signature does not verify, or its claims are unusable.
	ErrInvalidToken = apperr.New(apperr.KindUnauthorized, "invalid token")
)

// TokenVerifier validates a signed token and extracts the user it identifies.
type TokenVerifier interface {
	VerifyToken(raw string) (uuid.UUID, error)
}

// Service issues and verifies HS256-signed tokens. Tokens are stateless:
// the server keeps only the signing secret, never the tokens themselves.
type Service struct {
	secret []byte
	ttl    time.Duration
}

var _ TokenVerifier = (*Service)(nil)

// NewService creates a Service signing with secret. Tokens expire ttl
// after issuance.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken creates a signed token carrying the user's ID as subject.
func (s *Service) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses raw, checks its signature and expiry, and returns the
// user ID from the subject claim. Expiry is reported as ErrExpiredToken;
// every other failure is ErrInvalidToken.
func (s *Service) VerifyToken(raw string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
