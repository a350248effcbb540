package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/secondate/secondate/pkg/jwtx"
)

func TestSignupAndLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, _, _, _ := newTestServices(t)

	user, token, err := auth.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEmpty(t, token)
	require.Equal(t, "alice@example.com", user.Email)
	require.Equal(t, "Alice", user.FullName)

	logged, token, err := auth.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, user.ID, logged.ID)
	require.NotEmpty(t, token)

	_, _, err = auth.Login(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "nobody@example.com", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, _, _, _ := newTestServices(t)

	_, _, err := auth.Signup(ctx, "", "password123", "Alice")
	require.ErrorIs(t, err, ErrMissingFields)

	_, _, err = auth.Signup(ctx, "alice@example.com", "", "Alice")
	require.ErrorIs(t, err, ErrMissingFields)

	_, _, err = auth.Signup(ctx, "alice@example.com", "password123", "   ")
	require.ErrorIs(t, err, ErrMissingFields)

	_, _, err = auth.Signup(ctx, "not-an-email", "password123", "Alice")
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, _, err = auth.Signup(ctx, "alice@example.com", "short", "Alice")
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, _, _, _ := newTestServices(t)

	signupTestUser(t, auth, "alice@example.com", "Alice")

	_, _, err := auth.Signup(ctx, "alice@example.com", "password123", "Other Alice")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupTokenCarriesUserID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, _, _, _ := newTestServices(t)

	user, token, err := auth.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)

	verifier := jwtx.NewHS256Verifier([]byte("test-session-secret"), "couple-test")
	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestGetUserByIDUnknown(t *testing.T) {
	t.Parallel()
	auth, _, _, _ := newTestServices(t)

	_, err := auth.GetUserByID(context.Background(), "no-such-user")
	require.ErrorIs(t, err, ErrUserNotFound)
}
