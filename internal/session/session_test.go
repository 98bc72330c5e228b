package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/intuvia/internal/logging"
	"github.com/dmitrijs2005/intuvia/internal/storage"
	"github.com/dmitrijs2005/intuvia/internal/users"
)

func testView() users.View {
	return users.View{
		ID:    "u-1",
		Email: "admin@intuvia.com",
		Role:  users.RoleAdmin,
		Type:  users.TypeEnterprise,
		Name:  "David Chen",
	}
}

func newTestManager(t *testing.T) (*Manager, *storage.InMemoryStore) {
	t.Helper()
	mem := storage.NewInMemoryStore()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	return NewManager(mem, 24*time.Hour, logger), mem
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	created, err := m.Create(ctx, testView())
	require.NoError(t, err)

	got, err := m.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "admin@intuvia.com", got.Email)
	assert.Equal(t, users.RoleAdmin, got.Role)
	assert.Equal(t, users.TypeEnterprise, got.Type)
	assert.Equal(t, "David Chen", got.Name)
	assert.Equal(t, created.ExpiresAt.Unix(), got.ExpiresAt.Unix())
	assert.Equal(t, created.LoginTime.Add(24*time.Hour).Unix(), created.ExpiresAt.Unix())
}

func TestGet_NoSession(t *testing.T) {
	m, _ := newTestManager(t)

	got, err := m.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)

	loggedIn, err := m.IsLoggedIn(context.Background())
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestGet_ExpiredSessionIsDeletedLazily(t *testing.T) {
	ctx := context.Background()
	m, mem := newTestManager(t)

	_, err := m.Create(ctx, testView())
	require.NoError(t, err)

	// Force the clock past the expiry.
	m.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	raw, err := mem.Get(ctx, storage.KeySession)
	require.NoError(t, err)
	assert.Nil(t, raw, "expired slot must be deleted on read")
}

func TestCreate_OverwritesPriorSession(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	_, err := m.Create(ctx, testView())
	require.NoError(t, err)

	second := testView()
	second.Email = "user@example.com"
	second.Role = users.RoleAttendee
	_, err = m.Create(ctx, second)
	require.NoError(t, err)

	got, err := m.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user@example.com", got.Email)
}

func TestLogout_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	_, err := m.Create(ctx, testView())
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))
	require.NoError(t, m.Logout(ctx))

	loggedIn, err := m.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestRoleAndType_Projections(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	role, err := m.Role(ctx)
	require.NoError(t, err)
	assert.Empty(t, role)

	_, err = m.Create(ctx, testView())
	require.NoError(t, err)

	role, err = m.Role(ctx)
	require.NoError(t, err)
	assert.Equal(t, users.RoleAdmin, role)

	typ, err := m.Type(ctx)
	require.NoError(t, err)
	assert.Equal(t, users.TypeEnterprise, typ)
}

func TestRecord_JSONShape(t *testing.T) {
	ctx := context.Background()
	m, mem := newTestManager(t)

	_, err := m.Create(ctx, testView())
	require.NoError(t, err)

	raw, err := mem.Get(ctx, storage.KeySession)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"email", "role", "type", "name", "loginTime", "expiresAt"} {
		assert.Contains(t, doc, key)
	}
	assert.NotContains(t, doc, "password")
}
