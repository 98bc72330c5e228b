// Package resettokens implements the single-slot password-reset token
// lifecycle: request, verify, and consume. At most one token is outstanding
// at a time; issuing a new one silently invalidates the previous token.
package resettokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/dmitrijs2005/intuvia/internal/logging"
	"github.com/dmitrijs2005/intuvia/internal/shared"
	"github.com/dmitrijs2005/intuvia/internal/storage"
	"github.com/dmitrijs2005/intuvia/internal/users"
)

// Record is the persisted reset-token document.
type Record struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service owns the reset_token slot and drives the reset flow against the
// credential store.
type Service struct {
	store       storage.Store
	credentials *users.CredentialStore
	validity    time.Duration
	baseURL     string
	logger      logging.Logger

	// Seams for tests.
	now      func() time.Time
	newToken func() string
}

func NewService(store storage.Store, credentials *users.CredentialStore, validity time.Duration, baseURL string, logger logging.Logger) *Service {
	return &Service{
		store:       store,
		credentials: credentials,
		validity:    validity,
		baseURL:     baseURL,
		logger:      logger.With("module", "reset_tokens"),
		now:         time.Now,
		newToken:    generateToken,
	}
}

// generateToken builds the opaque token string. It is deliberately
// low-entropy (math/rand plus a timestamp), mirroring the demo's stated
// non-production posture. Do not reuse for anything real.
func generateToken() string {
	return strconv.FormatUint(rand.Uint64(), 36) + strconv.FormatInt(time.Now().UnixNano(), 36)
}

// Request issues a fresh reset token for the given email and returns the
// reset URL carrying it. Any previously outstanding token is overwritten.
// Returns shared.ErrAccountNotFound when the email is not in the credential
// store.
func (s *Service) Request(ctx context.Context, email string) (string, error) {
	user, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.ErrAccountNotFound
		}
		return "", err
	}

	record := Record{
		Email:     user.Email,
		Token:     s.newToken(),
		ExpiresAt: s.now().Add(s.validity),
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encoding reset token: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyResetToken, raw); err != nil {
		return "", fmt.Errorf("writing reset token slot: %w", err)
	}

	s.logger.Info(ctx, "reset token issued", "email", user.Email, "expires_at", record.ExpiresAt)
	return fmt.Sprintf("%s?token=%s", s.baseURL, record.Token), nil
}

// Verify checks the given token against the outstanding request and returns
// the bound email. The slot is left in place on success so that re-verifying
// the same token is idempotent; only an expired token removes it.
func (s *Service) Verify(ctx context.Context, token string) (string, error) {
	raw, err := s.store.Get(ctx, storage.KeyResetToken)
	if err != nil {
		return "", fmt.Errorf("reading reset token slot: %w", err)
	}
	if len(raw) == 0 {
		return "", shared.ErrNoActiveRequest
	}

	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return "", fmt.Errorf("decoding reset token: %w", err)
	}

	if record.Token != token {
		return "", shared.ErrTokenMismatch
	}

	if record.ExpiresAt.Before(s.now()) {
		if err := s.store.Delete(ctx, storage.KeyResetToken); err != nil {
			return "", fmt.Errorf("deleting expired reset token: %w", err)
		}
		return "", shared.ErrTokenExpired
	}

	return record.Email, nil
}

// Reset verifies the token, updates the bound user's password, and consumes
// the token slot. Failures from either step propagate unchanged.
func (s *Service) Reset(ctx context.Context, token, newPassword string) error {
	email, err := s.Verify(ctx, token)
	if err != nil {
		return err
	}

	if err := s.credentials.UpdatePassword(ctx, email, newPassword); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, storage.KeyResetToken); err != nil {
		return fmt.Errorf("consuming reset token: %w", err)
	}

	s.logger.Info(ctx, "password reset completed", "email", email)
	return nil
}
