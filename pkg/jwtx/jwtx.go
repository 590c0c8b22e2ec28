// Package jwtx wraps golang-jwt with the small claims surface this service
// needs: HS256-signed assertions of {subject, expiry} and nothing else.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTLs. Access tokens are short-lived and presented per
// request; refresh tokens only mint new pairs.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// ErrInvalidToken covers every verification failure: malformed input, bad
// signature, wrong algorithm, and expiry. Callers are not told which.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// Claims are the registered claims we embed in every token. No custom fields:
// the subject is the user id and that is the whole assertion.
type Claims struct {
	jwt.RegisteredClaims
}

// NewClaims builds claims for subject valid for ttl from now.
func NewClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// Sign produces an HS256 compact JWT over claims using secret.
func Sign(claims Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a compact JWT against secret. Signature and
// expiry are both enforced; any failure surfaces as ErrInvalidToken so the
// caller cannot leak why a token was rejected.
func Verify(tokenString string, secret []byte) (Claims, error) {
	claims := Claims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
