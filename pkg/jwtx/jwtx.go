// Package jwtx issues and verifies HS256 access tokens. The subject claim is
// the user's email address and a user_id claim carries the ULID, matching
// what the rest of the service keys users by.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is used when the Signer's TTL is unset.
const DefaultAccessTokenTTL = 60 * time.Minute

var (
	// ErrInvalidToken reports a token that failed signature, issuer, or
	// expiry validation.
	ErrInvalidToken = errors.New("jwtx: invalid token")
	// ErrNoSecret reports a Signer constructed without key material.
	ErrNoSecret = errors.New("jwtx: signing secret not configured")
)

// Claims are the access token claims. Subject is the user's email.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Signer issues and verifies access tokens with a shared HMAC secret.
type Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Issue signs an access token for the given user.
func (s *Signer) Issue(email, userID string) (string, error) {
	if len(s.Secret) == 0 {
		return "", ErrNoSecret
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Verify parses raw and returns its claims if the signature, issuer, and
// expiry all check out.
func (s *Signer) Verify(raw string) (Claims, error) {
	if len(s.Secret) == 0 {
		return Claims{}, ErrNoSecret
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}

	return claims, nil
}
