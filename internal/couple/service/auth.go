package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/secondate/secondate/internal/couple/domain"
	"github.com/secondate/secondate/internal/couple/store"
	"github.com/secondate/secondate/pkg/cryptox"
	"github.com/secondate/secondate/pkg/idx"
	"github.com/secondate/secondate/pkg/jwtx"
	"github.com/secondate/secondate/pkg/slogx"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// AuthService registers accounts and mints session tokens. It is the identity
// collaborator of the pairing engine: everything else only sees the stable
// user id it yields.
type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	SessionTTL time.Duration
}

// Signup creates an account and returns it with a fresh session token.
func (s *AuthService) Signup(ctx context.Context, email, password, fullName string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)

	if email == "" || password == "" || fullName == "" {
		return domain.User{}, "", ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return domain.User{}, "", ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return domain.User{}, "", ErrPasswordTooShort
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		return domain.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, "", err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// Lost a signup race on the same email.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	token, err := s.Signer.Sign(user.ID, s.SessionTTL)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("sign session token: %w", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return user, token, nil
}

// Login verifies credentials and returns the account with a fresh session
// token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return domain.User{}, "", ErrMissingFields
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	token, err := s.Signer.Sign(user.ID, s.SessionTTL)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("sign session token: %w", err)
	}

	log.Debug("user logged in", slog.String("user_id", user.ID))
	return user, token, nil
}

// GetUserByID fetches an account by id.
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
