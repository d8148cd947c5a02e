package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dieselmedia/booking-api/internal/clock"
	"github.com/dieselmedia/booking-api/internal/errs"
)

const TokenType = "bearer"

// TokenService issues and verifies stateless HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    clock.Clock
}

func NewTokenService(secret string, ttl time.Duration, now clock.Clock) *TokenService {
	if now == nil {
		now = clock.UTC
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

func (s *TokenService) Issue(email string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify returns the subject of a valid token; any failure is ErrUnauthenticated.
func (s *TokenService) Verify(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", errs.Unauthenticated("invalid token")
	}
	if claims.Subject == "" {
		return "", errs.Unauthenticated("token without subject")
	}

	return claims.Subject, nil
}
