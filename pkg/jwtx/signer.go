package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints signed session tokens.
type Signer interface {
	Sign(subject string, ttl time.Duration) (string, error)
}

type hs256Signer struct {
	secret []byte
	issuer string
}

// NewHS256Signer returns a Signer producing HS256-signed tokens with the
// given issuer claim.
func NewHS256Signer(secret []byte, issuer string) Signer {
	return &hs256Signer{secret: secret, issuer: issuer}
}

func (s *hs256Signer) Sign(subject string, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	return token.SignedString(s.secret)
}
