package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/secondate/secondate/internal/couple/service"
	"github.com/secondate/secondate/internal/couple/store/drivers/sqlite"
	"github.com/secondate/secondate/pkg/couplesdk"
	"github.com/secondate/secondate/pkg/cryptox"
	"github.com/secondate/secondate/pkg/jwtx"
	"github.com/secondate/secondate/pkg/slogx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "http-test-*")
	if err != nil {
		os.Exit(1)
	}

	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	secret := []byte("test-session-secret")
	signer := jwtx.NewHS256Signer(secret, "couple-test")
	verifier := jwtx.NewHS256Verifier(secret, "couple-test")

	logger := slogx.New(slogx.Config{
		Service: "couple-test",
		Level:   "error",
		Format:  "text",
	})

	router := NewRouter(verifier, time.Hour, false, "test", st, logger)
	router.AuthService = &service.AuthService{Store: st, Signer: signer, SessionTTL: time.Hour}
	router.AnswersService = &service.AnswersService{Store: st}
	router.PairingService = &service.PairingService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server) *couplesdk.Client {
	t.Helper()

	c, err := couplesdk.NewClient(srv.URL)
	require.NoError(t, err)
	return c
}

func signupClient(t *testing.T, c *couplesdk.Client, email, fullName string) couplesdk.UserPayload {
	t.Helper()

	resp, err := c.Signup(context.Background(), couplesdk.SignupRequest{
		Email:    email,
		Password: "password123",
		FullName: fullName,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	return resp.User
}

func TestAnonymousPairingFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newTestServer(t)

	alice := newTestClient(t, srv)
	signupClient(t, alice, "alice@example.com", "Alice")

	me, err := alice.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "Alice", me.User.FullName)

	// Inviting before answering is refused.
	_, err = alice.CreateInvite(ctx)
	var apiErr *couplesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	aliceAnswers := map[string]string{"q1": "A", "q2": "B"}
	require.NoError(t, alice.SaveAnswers(ctx, aliceAnswers))

	invite, err := alice.CreateInvite(ctx)
	require.NoError(t, err)
	require.Equal(t, "pending", invite.Status)
	require.NotEmpty(t, invite.InviteKey)

	// Re-inviting returns the same pending invite.
	again, err := alice.CreateInvite(ctx)
	require.NoError(t, err)
	require.Equal(t, invite.InviteKey, again.InviteKey)

	// An anonymous visitor looks the invite up and completes it.
	visitor := newTestClient(t, srv)
	got, err := visitor.GetInvite(ctx, invite.InviteKey)
	require.NoError(t, err)
	require.Equal(t, "pending", got.Status)
	require.NotEmpty(t, got.FirstPersonID)

	// Result is not available while pending.
	_, err = visitor.GetResult(ctx, invite.InviteKey)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)

	bobAnswers := map[string]string{"q1": "A", "q2": "C"}
	completed, err := visitor.CompleteInvite(ctx, invite.InviteKey, couplesdk.CompleteInviteRequest{
		PartnerName:    "Bob",
		PartnerAnswers: bobAnswers,
	})
	require.NoError(t, err)
	require.Equal(t, "completed", completed.Status)

	// A second completion is refused.
	_, err = visitor.CompleteInvite(ctx, invite.InviteKey, couplesdk.CompleteInviteRequest{
		PartnerName:    "Carol",
		PartnerAnswers: bobAnswers,
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)

	result, err := visitor.GetResult(ctx, invite.InviteKey)
	require.NoError(t, err)
	require.Equal(t, "Alice", result.FirstPersonName)
	require.Equal(t, "Bob", result.SecondPersonName)
	require.Equal(t, aliceAnswers, result.FirstPersonAnswers)
	require.Equal(t, bobAnswers, result.SecondPersonAnswers)
	require.Equal(t, "completed", result.Status)
}

func TestLinkedPairingFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newTestServer(t)

	alice := newTestClient(t, srv)
	signupClient(t, alice, "alice@example.com", "Alice")
	require.NoError(t, alice.SaveAnswers(ctx, map[string]string{"q1": "A"}))

	invite, err := alice.CreateInvite(ctx)
	require.NoError(t, err)

	// Linking your own invite is refused.
	_, err = alice.LinkAccount(ctx, invite.InviteKey)
	var apiErr *couplesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)

	bob := newTestClient(t, srv)
	signupClient(t, bob, "bob@example.com", "Bob")

	// Bob has to answer before linking.
	_, err = bob.LinkAccount(ctx, invite.InviteKey)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	bobAnswers := map[string]string{"q1": "B"}
	require.NoError(t, bob.SaveAnswers(ctx, bobAnswers))

	linked, err := bob.LinkAccount(ctx, invite.InviteKey)
	require.NoError(t, err)
	require.Equal(t, invite.InviteKey, linked.InviteKey)

	result, err := newTestClient(t, srv).GetResult(ctx, invite.InviteKey)
	require.NoError(t, err)
	require.Equal(t, "Alice", result.FirstPersonName)
	require.Equal(t, "Bob", result.SecondPersonName)
	require.Equal(t, bobAnswers, result.SecondPersonAnswers)

	// Both sides see the pairing in their listings, without answer payloads.
	invites, err := alice.MyInvites(ctx)
	require.NoError(t, err)
	require.Len(t, invites.Invites, 1)
	require.Equal(t, "Alice", invites.Invites[0].FirstPerson.FullName)
	require.NotNil(t, invites.Invites[0].SecondPerson)
	require.Equal(t, "Bob", invites.Invites[0].SecondPerson.FullName)

	bobInvites, err := bob.MyInvites(ctx)
	require.NoError(t, err)
	require.Len(t, bobInvites.Invites, 1)
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newTestServer(t)

	c := newTestClient(t, srv)

	// No session yet.
	_, err := c.Me(ctx)
	var apiErr *couplesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	signupClient(t, c, "alice@example.com", "Alice")

	_, err = c.Me(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Logout(ctx))

	_, err = c.Me(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// Login restores the session.
	resp, err := c.Login(ctx, couplesdk.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	_, err = c.Me(ctx)
	require.NoError(t, err)
}

func TestUnknownInviteKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := newTestServer(t)

	c := newTestClient(t, srv)

	_, err := c.GetInvite(ctx, "nope")
	var apiErr *couplesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	_, err = c.GetResult(ctx, "nope")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	_, err = c.CompleteInvite(ctx, "nope", couplesdk.CompleteInviteRequest{
		PartnerName:    "Bob",
		PartnerAnswers: map[string]string{"q1": "A"},
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
}
