// Package jwtx signs and verifies the HMAC session tokens issued to browser
// clients as httpOnly cookies.
package jwtx

import (
	"errors"
	"time"
)

var (
	// ErrTokenExpired reports a token past its expiry.
	ErrTokenExpired = errors.New("jwtx: token expired")
	// ErrTokenInvalid reports a token that failed parsing or signature
	// verification.
	ErrTokenInvalid = errors.New("jwtx: token invalid")
)

// Claims is the validated payload of a session token.
type Claims struct {
	Subject   string // user id
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ValidateExpiry checks the expiry against the current time.
func (c Claims) ValidateExpiry() error {
	if c.ExpiresAt.IsZero() || time.Now().After(c.ExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}
