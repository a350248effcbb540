package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/secondate/secondate/internal/couple/domain"
	"github.com/secondate/secondate/internal/couple/store"
	"github.com/secondate/secondate/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore("file:" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func createTestUser(t *testing.T, s *Store, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FullName:     "Test User",
		PasswordHash: "$argon2id$v=19$m=1,t=1,p=1$AA$AA",
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func createTestPairing(t *testing.T, s *Store, initiatorID, key string) domain.Pairing {
	t.Helper()

	p := domain.Pairing{
		ID:          idx.New().String(),
		InviteKey:   key,
		InitiatorID: initiatorID,
		Status:      domain.StatusPending,
	}
	require.NoError(t, s.Pairings().CreatePairing(context.Background(), p))
	return p
}

func TestCreatePairingEnforcesUniqueInviteKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")

	createTestPairing(t, s, alice.ID, "k1")

	err := s.Pairings().CreatePairing(ctx, domain.Pairing{
		ID:          idx.New().String(),
		InviteKey:   "k1",
		InitiatorID: bob.ID,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestCreatePairingEnforcesSinglePendingPerInitiator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := createTestUser(t, s, "alice@example.com")
	createTestPairing(t, s, alice.ID, "k1")

	err := s.Pairings().CreatePairing(ctx, domain.Pairing{
		ID:          idx.New().String(),
		InviteKey:   "k2",
		InitiatorID: alice.ID,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Completing the pending pairing frees the initiator to create another.
	require.NoError(t, s.Pairings().CompletePairingAnonymous(ctx, "k1", "Bob",
		domain.AnswerSet{"q1": "B"}))
	require.NoError(t, s.Pairings().CreatePairing(ctx, domain.Pairing{
		ID:          idx.New().String(),
		InviteKey:   "k2",
		InitiatorID: alice.ID,
	}))
}

func TestCompletePairingAnonymousIsTerminal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := createTestUser(t, s, "alice@example.com")
	createTestPairing(t, s, alice.ID, "k1")

	require.NoError(t, s.Pairings().CompletePairingAnonymous(ctx, "k1", "Bob",
		domain.AnswerSet{"q1": "B"}))

	// Second completion loses the conditional update.
	err := s.Pairings().CompletePairingAnonymous(ctx, "k1", "Mallory",
		domain.AnswerSet{"q1": "C"})
	require.ErrorIs(t, err, store.ErrConflict)

	// Linking after anonymous completion is also rejected.
	carol := createTestUser(t, s, "carol@example.com")
	err = s.Pairings().LinkPairingPartner(ctx, "k1", carol.ID)
	require.ErrorIs(t, err, store.ErrConflict)

	// The loser's attempt left the record unchanged.
	p, err := s.Pairings().GetPairingByKey(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, p.Status)
	require.Equal(t, domain.PartnerAnonymous, p.Partner.Kind)
	require.Equal(t, "Bob", p.Partner.DisplayName)
	require.Equal(t, domain.AnswerSet{"q1": "B"}, p.Partner.Answers)
}

func TestLinkPairingPartnerIsTerminal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")
	carol := createTestUser(t, s, "carol@example.com")
	createTestPairing(t, s, alice.ID, "k1")

	require.NoError(t, s.Pairings().LinkPairingPartner(ctx, "k1", bob.ID))

	err := s.Pairings().LinkPairingPartner(ctx, "k1", carol.ID)
	require.ErrorIs(t, err, store.ErrConflict)

	p, err := s.Pairings().GetPairingByKey(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, p.Status)
	require.Equal(t, domain.PartnerLinked, p.Partner.Kind)
	require.Equal(t, bob.ID, p.Partner.UserID)
}

func TestConditionalUpdatesOnUnknownKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Pairings().CompletePairingAnonymous(ctx, "missing", "Bob",
		domain.AnswerSet{"q1": "B"})
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Pairings().LinkPairingPartner(ctx, "missing", "some-user")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListPairingsForUserNewestFirstWithoutInlineAnswers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")

	createTestPairing(t, s, alice.ID, "k1")
	require.NoError(t, s.Pairings().CompletePairingAnonymous(ctx, "k1", "Anon",
		domain.AnswerSet{"q1": "B"}))

	createTestPairing(t, s, bob.ID, "k2")
	require.NoError(t, s.Pairings().LinkPairingPartner(ctx, "k2", alice.ID))

	pairings, err := s.Pairings().ListPairingsForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, pairings, 2)

	// Newest first; alice appears both as initiator and as linked partner.
	require.Equal(t, "k2", pairings[0].InviteKey)
	require.Equal(t, "k1", pairings[1].InviteKey)

	// The inline snapshot must not be loaded by listings.
	for _, p := range pairings {
		require.Nil(t, p.Partner.Answers)
	}
	require.Equal(t, "Anon", pairings[1].Partner.DisplayName)
}

func TestGetPendingPairingByInitiator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	alice := createTestUser(t, s, "alice@example.com")

	_, err := s.Pairings().GetPendingPairingByInitiator(ctx, alice.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	created := createTestPairing(t, s, alice.ID, "k1")
	p, err := s.Pairings().GetPendingPairingByInitiator(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, p.ID)

	require.NoError(t, s.Pairings().CompletePairingAnonymous(ctx, "k1", "Bob",
		domain.AnswerSet{"q1": "B"}))
	_, err = s.Pairings().GetPendingPairingByInitiator(ctx, alice.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
