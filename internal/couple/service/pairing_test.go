package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/secondate/secondate/internal/couple/domain"
	"github.com/secondate/secondate/pkg/idx"
)

var testAnswers = domain.AnswerSet{"q1": "yes", "q2": "no", "q3": "maybe"}

func TestCreateInviteRequiresAnswers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, _, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")

	_, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.ErrorIs(t, err, ErrAnswersRequired)
}

func TestCreateInviteRequiresDisplayName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, answers, pairing, st := newTestServices(t)

	// Signup always sets a name, so seed a nameless account directly.
	nameless := domain.User{
		ID:           idx.New().String(),
		Email:        "ghost@example.com",
		PasswordHash: "$argon2id$v=19$m=1,t=1,p=1$AA$AA",
	}
	require.NoError(t, st.Users().CreateUser(ctx, nameless))
	saveTestAnswers(t, answers, nameless.ID, testAnswers)

	_, _, err := pairing.CreateInvite(ctx, nameless.ID)
	require.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateInviteIsIdempotentWhilePending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)

	first, created, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, created)
	require.NotEmpty(t, first.InviteKey)
	require.Equal(t, domain.StatusPending, first.Status)

	second, created, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.InviteKey, second.InviteKey)
	require.Equal(t, first.ID, second.ID)
}

func TestCreateInviteAfterCompletionStartsFresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)

	first, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)
	require.NoError(t, pairing.CompleteInvite(ctx, first.InviteKey, "Bob", testAnswers))

	second, created, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, created)
	require.NotEqual(t, first.InviteKey, second.InviteKey)
}

func TestCompleteInviteAnonymous(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)

	p, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)

	bobAnswers := domain.AnswerSet{"q1": "no", "q2": "no", "q3": "yes"}
	require.NoError(t, pairing.CompleteInvite(ctx, p.InviteKey, "  Bob  ", bobAnswers))

	got, err := pairing.GetInvite(ctx, p.InviteKey)
	require.NoError(t, err)
	require.True(t, got.Completed())
	require.Equal(t, domain.PartnerAnonymous, got.Partner.Kind)
	require.Equal(t, "Bob", got.Partner.DisplayName)
	require.Equal(t, bobAnswers, got.Partner.Answers)

	// The first completion is terminal.
	err = pairing.CompleteInvite(ctx, p.InviteKey, "Carol", testAnswers)
	require.ErrorIs(t, err, ErrInviteCompleted)
}

func TestCompleteInviteValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)

	p, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)

	require.ErrorIs(t, pairing.CompleteInvite(ctx, "", "Bob", testAnswers), ErrInviteKeyRequired)
	require.ErrorIs(t, pairing.CompleteInvite(ctx, p.InviteKey, "   ", testAnswers), ErrPartnerNameRequired)
	require.ErrorIs(t, pairing.CompleteInvite(ctx, p.InviteKey, "Bob", nil), ErrEmptyAnswers)
	require.ErrorIs(t, pairing.CompleteInvite(ctx, "no-such-key", "Bob", testAnswers), ErrInviteNotFound)

	// None of the rejected attempts may have touched the pairing.
	got, err := pairing.GetInvite(ctx, p.InviteKey)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)
}

func TestLinkAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)
	bob := signupTestUser(t, auth, "bob@example.com", "Bob")
	bobAnswers := domain.AnswerSet{"q1": "no", "q2": "yes"}
	saveTestAnswers(t, answers, bob.ID, bobAnswers)

	p, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)

	linked, err := pairing.LinkAccount(ctx, bob.ID, p.InviteKey)
	require.NoError(t, err)
	require.True(t, linked.Completed())
	require.Equal(t, domain.PartnerLinked, linked.Partner.Kind)
	require.Equal(t, bob.ID, linked.Partner.UserID)

	// A linked pairing is just as terminal as an anonymous one.
	_, err = pairing.LinkAccount(ctx, bob.ID, p.InviteKey)
	require.ErrorIs(t, err, ErrInviteCompleted)
	err = pairing.CompleteInvite(ctx, p.InviteKey, "Carol", testAnswers)
	require.ErrorIs(t, err, ErrInviteCompleted)
}

func TestLinkAccountRejectsOwnInvite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)

	p, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)

	_, err = pairing.LinkAccount(ctx, alice.ID, p.InviteKey)
	require.ErrorIs(t, err, ErrSelfLink)

	// Still refused once the pairing has completed.
	require.NoError(t, pairing.CompleteInvite(ctx, p.InviteKey, "Bob", testAnswers))
	_, err = pairing.LinkAccount(ctx, alice.ID, p.InviteKey)
	require.ErrorIs(t, err, ErrSelfLink)
}

func TestLinkAccountRequiresAnswers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)
	bob := signupTestUser(t, auth, "bob@example.com", "Bob")

	p, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)

	_, err = pairing.LinkAccount(ctx, bob.ID, p.InviteKey)
	require.ErrorIs(t, err, ErrAnswersRequired)
}

func TestLinkAccountAnonymousCompletionNotLinkable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)
	bob := signupTestUser(t, auth, "bob@example.com", "Bob")
	saveTestAnswers(t, answers, bob.ID, testAnswers)

	p, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)
	require.NoError(t, pairing.CompleteInvite(ctx, p.InviteKey, "Bob", testAnswers))

	_, err = pairing.LinkAccount(ctx, bob.ID, p.InviteKey)
	require.ErrorIs(t, err, ErrInviteCompleted)
}

func TestGetResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)

	p, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)

	_, err = pairing.GetResult(ctx, p.InviteKey)
	require.ErrorIs(t, err, ErrResultNotReady)

	bobAnswers := domain.AnswerSet{"q1": "no", "q2": "yes", "q3": "maybe"}
	require.NoError(t, pairing.CompleteInvite(ctx, p.InviteKey, "Bob", bobAnswers))

	result, err := pairing.GetResult(ctx, p.InviteKey)
	require.NoError(t, err)
	require.Equal(t, "Alice", result.FirstPersonName)
	require.Equal(t, "Bob", result.SecondPersonName)
	require.Equal(t, testAnswers, result.FirstPersonAnswers)
	require.Equal(t, bobAnswers, result.SecondPersonAnswers)
	require.Equal(t, domain.StatusCompleted, result.Status)

	_, err = pairing.GetResult(ctx, "no-such-key")
	require.ErrorIs(t, err, ErrInviteNotFound)
}

func TestGetResultPrefersLinkedPartnerProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)
	bob := signupTestUser(t, auth, "bob@example.com", "Bob")
	bobAnswers := domain.AnswerSet{"q1": "no"}
	saveTestAnswers(t, answers, bob.ID, bobAnswers)

	p, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)
	_, err = pairing.LinkAccount(ctx, bob.ID, p.InviteKey)
	require.NoError(t, err)

	result, err := pairing.GetResult(ctx, p.InviteKey)
	require.NoError(t, err)
	require.Equal(t, "Bob", result.SecondPersonName)
	require.Equal(t, bobAnswers, result.SecondPersonAnswers)

	// A linked partner's later edits show up in the result.
	updated := domain.AnswerSet{"q1": "changed my mind"}
	saveTestAnswers(t, answers, bob.ID, updated)

	result, err = pairing.GetResult(ctx, p.InviteKey)
	require.NoError(t, err)
	require.Equal(t, updated, result.SecondPersonAnswers)
}

func TestListInvitesForUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	auth, answers, pairing, _ := newTestServices(t)

	alice := signupTestUser(t, auth, "alice@example.com", "Alice")
	saveTestAnswers(t, answers, alice.ID, testAnswers)
	bob := signupTestUser(t, auth, "bob@example.com", "Bob")
	saveTestAnswers(t, answers, bob.ID, testAnswers)

	first, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)
	require.NoError(t, pairing.CompleteInvite(ctx, first.InviteKey, "Mystery Date", testAnswers))

	second, _, err := pairing.CreateInvite(ctx, alice.ID)
	require.NoError(t, err)
	_, err = pairing.LinkAccount(ctx, bob.ID, second.InviteKey)
	require.NoError(t, err)

	entries, err := pairing.ListInvitesForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	require.Equal(t, second.InviteKey, entries[0].Pairing.InviteKey)
	require.Equal(t, first.InviteKey, entries[1].Pairing.InviteKey)

	require.Equal(t, "Alice", entries[0].Initiator.FullName)
	require.NotNil(t, entries[0].Partner)
	require.Equal(t, "Bob", entries[0].Partner.FullName)

	require.Nil(t, entries[1].Partner)
	require.Equal(t, "Mystery Date", entries[1].Pairing.Partner.DisplayName)

	// Listings never carry answer sets.
	for _, e := range entries {
		require.Nil(t, e.Pairing.Partner.Answers)
	}

	// Bob sees the pairing he linked into.
	bobEntries, err := pairing.ListInvitesForUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobEntries, 1)
	require.Equal(t, second.InviteKey, bobEntries[0].Pairing.InviteKey)
}
