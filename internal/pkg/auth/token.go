// Package auth provides HS256 access-token helpers for the rental API.
// Token issuance lives outside this service; the HTTP layer only needs to
// generate tokens for tests and verify the ones callers present.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rental/internal/pkg/errs"
)

// ErrTokenIsInvalid is returned when a presented token fails signature or claim checks.
var ErrTokenIsInvalid = errors.New("access token is invalid")

const defaultTTL = 24 * time.Hour

// Claims carries the registered JWT claims for an authenticated caller.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateAccessToken issues an HS256 token for the given subject.
// A non-positive ttl falls back to 24 hours.
func GenerateAccessToken(secret, subject string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errs.NewValueIsRequiredError("subject")
	}
	if secret == "" {
		return "", time.Time{}, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAccessToken verifies the signature and time claims of a token and
// returns its claims. Only HS256 is accepted.
func ParseAccessToken(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenIsInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Join(ErrTokenIsInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenIsInvalid
	}

	return claims, nil
}
