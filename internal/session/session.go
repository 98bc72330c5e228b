// Package session manages the single login session persisted by the demo.
// Exactly one session exists at a time; creating a new one overwrites the
// previous record, and expiry is enforced lazily on read rather than by a
// background sweep.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/intuvia/internal/logging"
	"github.com/dmitrijs2005/intuvia/internal/storage"
	"github.com/dmitrijs2005/intuvia/internal/users"
)

// Record is the persisted session document. It copies the user fields the
// dashboard needs for display, never the password.
type Record struct {
	Email     string     `json:"email"`
	Role      users.Role `json:"role"`
	Type      users.Type `json:"type"`
	Name      string     `json:"name"`
	LoginTime time.Time  `json:"loginTime"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// Manager owns the session slot.
type Manager struct {
	store    storage.Store
	validity time.Duration
	logger   logging.Logger

	// now is a clock seam for expiry tests.
	now func() time.Time
}

func NewManager(store storage.Store, validity time.Duration, logger logging.Logger) *Manager {
	return &Manager{
		store:    store,
		validity: validity,
		logger:   logger.With("module", "session"),
		now:      time.Now,
	}
}

// Create stamps the sanitized user view with the current time and an absolute
// expiry, and persists it as the single session record. Any prior session is
// overwritten.
func (m *Manager) Create(ctx context.Context, view users.View) (*Record, error) {
	now := m.now()
	record := &Record{
		Email:     view.Email,
		Role:      view.Role,
		Type:      view.Type,
		Name:      view.Name,
		LoginTime: now,
		ExpiresAt: now.Add(m.validity),
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeySession, raw); err != nil {
		return nil, fmt.Errorf("writing session slot: %w", err)
	}

	m.logger.Info(ctx, "session created", "email", record.Email, "expires_at", record.ExpiresAt)
	return record, nil
}

// Get returns the current session, or (nil, nil) when none exists. An expired
// record is deleted on the spot and reported as absent.
func (m *Manager) Get(ctx context.Context) (*Record, error) {
	raw, err := m.store.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("reading session slot: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}

	if record.ExpiresAt.Before(m.now()) {
		if err := m.store.Delete(ctx, storage.KeySession); err != nil {
			return nil, fmt.Errorf("deleting expired session: %w", err)
		}
		m.logger.Info(ctx, "session expired", "email", record.Email)
		return nil, nil
	}

	return &record, nil
}

// IsLoggedIn reports whether a live session exists.
func (m *Manager) IsLoggedIn(ctx context.Context) (bool, error) {
	record, err := m.Get(ctx)
	if err != nil {
		return false, err
	}
	return record != nil, nil
}

// Logout deletes the session record. Logging out twice is fine.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("deleting session slot: %w", err)
	}
	return nil
}

// Role returns the current session's role, or "" when no session exists.
func (m *Manager) Role(ctx context.Context) (users.Role, error) {
	record, err := m.Get(ctx)
	if err != nil || record == nil {
		return "", err
	}
	return record.Role, nil
}

// Type returns the current session's account type, or "" when no session
// exists.
func (m *Manager) Type(ctx context.Context) (users.Type, error) {
	record, err := m.Get(ctx)
	if err != nil || record == nil {
		return "", err
	}
	return record.Type, nil
}
