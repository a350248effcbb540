package jwtx

import (
	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates raw session tokens and extracts their claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

type hs256Verifier struct {
	secret []byte
	issuer string
}

// NewHS256Verifier returns a Verifier for tokens minted by NewHS256Signer
// with the same secret and issuer.
func NewHS256Verifier(secret []byte, issuer string) Verifier {
	return &hs256Verifier{secret: secret, issuer: issuer}
}

func (v *hs256Verifier) Verify(raw string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrTokenInvalid
	}

	rc, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return Claims{}, ErrTokenInvalid
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
