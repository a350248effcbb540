package httpx

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/secondate/secondate/pkg/jwtx"
	"github.com/secondate/secondate/pkg/slogx"
)

// SessionCookieName is the cookie carrying the session JWT for browser
// clients.
const SessionCookieName = "jwt"

// AuthnMessages are the user-facing messages written on authentication
// failure. Localization lives with the caller.
type AuthnMessages struct {
	Missing string
	Invalid string
}

// AuthnMiddleware verifies the session token from the session cookie, falling
// back to an Authorization bearer header, and injects the user id into the
// request context.
func AuthnMiddleware(v jwtx.Verifier, msgs AuthnMessages) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := sessionToken(r)
			if raw == "" {
				writeUnauthenticated(w, msgs.Missing)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				writeUnauthenticated(w, msgs.Invalid)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeUnauthenticated(w, msgs.Invalid)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}
	return ""
}

func writeUnauthenticated(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"message": msg,
	})
}

// SetSessionCookie issues the session JWT as an httpOnly cookie.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
