package store

import (
	"context"
	"errors"

	"github.com/secondate/secondate/internal/couple/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrConflict reports a conditional update that found the record in a
	// state that no longer allows the mutation (e.g. completing an already
	// completed pairing).
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Answers() Answers
	Pairings() Pairings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step mutations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate-signup checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateFullName sets full_name and bumps updated_at.
	UpdateFullName(ctx context.Context, userID string, fullName string) error
}

type Answers interface {
	// GetAnswers returns the user's stored answer set.
	GetAnswers(ctx context.Context, userID string) (domain.AnswerRecord, error)

	// UpsertAnswers stores the answer set, replacing any previous
	// submission (last-write-wins).
	UpsertAnswers(ctx context.Context, userID string, answers domain.AnswerSet) error

	// HasAnswers reports whether the user has a stored answer set.
	HasAnswers(ctx context.Context, userID string) (bool, error)
}

type Pairings interface {
	// CreatePairing inserts a new pending pairing. Returns ErrAlreadyExists
	// when the invite key is taken or the initiator already has a pending
	// pairing (partial unique index).
	CreatePairing(ctx context.Context, p domain.Pairing) error

	// GetPairingByKey returns a pairing by its invite key.
	GetPairingByKey(ctx context.Context, inviteKey string) (domain.Pairing, error)

	// GetPendingPairingByInitiator returns the initiator's pending pairing,
	// if any.
	GetPendingPairingByInitiator(ctx context.Context, initiatorID string) (domain.Pairing, error)

	// InviteKeyExists reports whether the invite key is already in use.
	InviteKeyExists(ctx context.Context, inviteKey string) (bool, error)

	// ListPairingsForUser returns every pairing where the user is initiator
	// or linked partner, newest first. Inline partner answers are NOT
	// loaded by this query; listings must never expose them.
	ListPairingsForUser(ctx context.Context, userID string) ([]domain.Pairing, error)

	// CompletePairingAnonymous atomically sets the anonymous partner and
	// flips status to completed, guarded on status still being pending.
	// Returns ErrNotFound for an unknown key and ErrConflict when the
	// pairing is already completed.
	CompletePairingAnonymous(ctx context.Context, inviteKey, displayName string, answers domain.AnswerSet) error

	// LinkPairingPartner atomically sets the linked partner and flips
	// status to completed, guarded on status still being pending and no
	// partner being set. Same error contract as CompletePairingAnonymous.
	LinkPairingPartner(ctx context.Context, inviteKey, partnerID string) error
}
