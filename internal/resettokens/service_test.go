package resettokens

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/intuvia/internal/logging"
	"github.com/dmitrijs2005/intuvia/internal/shared"
	"github.com/dmitrijs2005/intuvia/internal/storage"
	"github.com/dmitrijs2005/intuvia/internal/users"
)

const baseURL = "https://intuvia.example/reset-password"

func newTestService(t *testing.T) (*Service, *users.CredentialStore, *storage.InMemoryStore) {
	t.Helper()
	mem := storage.NewInMemoryStore()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	cs := users.NewCredentialStore(mem, logger)
	require.NoError(t, cs.Initialize(context.Background()))
	return NewService(mem, cs, 30*time.Minute, baseURL, logger), cs, mem
}

func tokenFromURL(t *testing.T, resetURL string) string {
	t.Helper()
	u, err := url.Parse(resetURL)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

func TestRequest_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Request(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, shared.ErrAccountNotFound)
}

func TestRequest_ReturnsURLWithToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	resetURL, err := svc.Request(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resetURL, baseURL+"?token="))

	email, err := svc.Verify(context.Background(), tokenFromURL(t, resetURL))
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestVerify_NoOutstandingRequest(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Verify(context.Background(), "whatever")
	assert.ErrorIs(t, err, shared.ErrNoActiveRequest)
}

func TestVerify_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	resetURL, err := svc.Request(ctx, "user@example.com")
	require.NoError(t, err)
	token := tokenFromURL(t, resetURL)

	for i := 0; i < 2; i++ {
		email, err := svc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", email)
	}
}

func TestRequest_SecondRequestInvalidatesFirstToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	firstURL, err := svc.Request(ctx, "user@example.com")
	require.NoError(t, err)
	firstToken := tokenFromURL(t, firstURL)

	_, err = svc.Request(ctx, "admin@intuvia.com")
	require.NoError(t, err)

	_, err = svc.Verify(ctx, firstToken)
	assert.ErrorIs(t, err, shared.ErrTokenMismatch)
}

func TestVerify_ExpiredTokenDeletesSlot(t *testing.T) {
	ctx := context.Background()
	svc, _, mem := newTestService(t)

	resetURL, err := svc.Request(ctx, "user@example.com")
	require.NoError(t, err)
	token := tokenFromURL(t, resetURL)

	svc.now = func() time.Time { return time.Now().Add(31 * time.Minute) }

	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, shared.ErrTokenExpired)

	raw, err := mem.Get(ctx, storage.KeyResetToken)
	require.NoError(t, err)
	assert.Nil(t, raw, "expired slot must be deleted")

	// Subsequent verify reports no active request.
	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, shared.ErrNoActiveRequest)
}

func TestReset_ConsumesTokenAndUpdatesPassword(t *testing.T) {
	ctx := context.Background()
	svc, cs, mem := newTestService(t)

	resetURL, err := svc.Request(ctx, "user@example.com")
	require.NoError(t, err)
	token := tokenFromURL(t, resetURL)

	require.NoError(t, svc.Reset(ctx, token, "NewPass1!"))

	u, err := cs.FindByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "NewPass1!", u.Password)

	raw, err := mem.Get(ctx, storage.KeyResetToken)
	require.NoError(t, err)
	assert.Nil(t, raw, "token slot must be consumed by a successful reset")

	// The same token cannot be used again.
	err = svc.Reset(ctx, token, "Another1!")
	assert.ErrorIs(t, err, shared.ErrNoActiveRequest)
}

func TestReset_WrongTokenLeavesSlotIntact(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	resetURL, err := svc.Request(ctx, "user@example.com")
	require.NoError(t, err)
	token := tokenFromURL(t, resetURL)

	err = svc.Reset(ctx, "bogus", "NewPass1!")
	assert.ErrorIs(t, err, shared.ErrTokenMismatch)

	// The real token still works.
	require.NoError(t, svc.Reset(ctx, token, "NewPass1!"))
}

func TestGenerateToken_ValuesDiffer(t *testing.T) {
	a := generateToken()
	b := generateToken()
	assert.NotEmpty(t, a)
	if a == b {
		t.Logf("warning: two generated tokens are identical; extremely unlikely")
	}
}
