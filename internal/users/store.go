package users

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/intuvia/internal/logging"
	"github.com/dmitrijs2005/intuvia/internal/shared"
	"github.com/dmitrijs2005/intuvia/internal/storage"
)

// CredentialStore is the durable email→user mapping. All records live in a
// single slot; every mutation decodes the full list, changes it in place and
// writes the whole list back. That is safe here because the store has exactly
// one writer.
type CredentialStore struct {
	store  storage.Store
	logger logging.Logger
}

func NewCredentialStore(store storage.Store, logger logging.Logger) *CredentialStore {
	return &CredentialStore{
		store:  store,
		logger: logger.With("module", "credential_store"),
	}
}

// Initialize seeds the users slot with the demo account list if the slot is
// empty or absent. It never overwrites an existing populated store, so
// password resets survive restarts.
func (s *CredentialStore) Initialize(ctx context.Context) error {
	existing, err := s.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return fmt.Errorf("reading users slot: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seeded := make([]User, len(seedUsers))
	copy(seeded, seedUsers)
	for i := range seeded {
		seeded[i].ID = uuid.NewString()
	}

	if err := s.save(ctx, seeded); err != nil {
		return err
	}
	s.logger.Info(ctx, "seeded demo users", "count", len(seeded))
	return nil
}

// All returns every user record in stored (seed) order.
func (s *CredentialStore) All(ctx context.Context) ([]User, error) {
	raw, err := s.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("reading users slot: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var list []User
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decoding users slot: %w", err)
	}
	return list, nil
}

// FindByEmail looks a user up by email, case-insensitively. Returns
// shared.ErrNotFound when no record matches.
func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	list, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	for i := range list {
		if strings.ToLower(list[i].Email) == needle {
			u := list[i]
			return &u, nil
		}
	}
	return nil, shared.ErrNotFound
}

// UpdatePassword replaces the password of the user with the given email and
// persists the full list. Returns shared.ErrUserNotFound when the email is
// unknown.
func (s *CredentialStore) UpdatePassword(ctx context.Context, email, newPassword string) error {
	list, err := s.All(ctx)
	if err != nil {
		return err
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	for i := range list {
		if strings.ToLower(list[i].Email) == needle {
			list[i].Password = newPassword
			if err := s.save(ctx, list); err != nil {
				return err
			}
			s.logger.Info(ctx, "password updated", "email", list[i].Email)
			return nil
		}
	}
	return shared.ErrUserNotFound
}

func (s *CredentialStore) save(ctx context.Context, list []User) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding users slot: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyUsers, raw); err != nil {
		return fmt.Errorf("writing users slot: %w", err)
	}
	return nil
}
