// Package authn implements the login orchestrator: password login against
// the credential store plus the simulated enterprise-SSO and Google flows.
// The "network" in the simulated flows is nothing more than an injected
// delay; both always resolve against the same local credential store.
package authn

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/intuvia/internal/logging"
	"github.com/dmitrijs2005/intuvia/internal/shared"
	"github.com/dmitrijs2005/intuvia/internal/users"
)

// DelayFunc waits for d or until ctx is cancelled. Injected so that tests can
// make the simulated network resolve immediately.
type DelayFunc func(ctx context.Context, d time.Duration) error

// Sleep is the production DelayFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Service answers login requests.
type Service struct {
	credentials    *users.CredentialStore
	delay          DelayFunc
	simulatedDelay time.Duration
	logger         logging.Logger
}

func NewService(credentials *users.CredentialStore, delay DelayFunc, simulatedDelay time.Duration, logger logging.Logger) *Service {
	if delay == nil {
		delay = Sleep
	}
	return &Service{
		credentials:    credentials,
		delay:          delay,
		simulatedDelay: simulatedDelay,
		logger:         logger.With("module", "authn"),
	}
}

// Login authenticates email+password against the credential store and
// returns the sanitized user view. Email matching is case-insensitive; the
// password comparison is exact. Login is synchronous — callers wanting a
// form-submit feel add their own delay.
func (s *Service) Login(ctx context.Context, email, password string) (*users.View, error) {
	user, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrAccountNotFound
		}
		return nil, err
	}

	if user.Password != password {
		return nil, shared.ErrInvalidCredentials
	}

	view := user.Sanitize()
	s.logger.Info(ctx, "login succeeded", "email", view.Email, "role", view.Role)
	return &view, nil
}

// LoginWithSSO simulates an enterprise single-sign-on round trip: after the
// configured delay it picks the first enterprise user whose email belongs to
// the given domain, in store order. There is no tie-break policy beyond that
// order.
func (s *Service) LoginWithSSO(ctx context.Context, domain string) (*users.View, error) {
	if err := s.delay(ctx, s.simulatedDelay); err != nil {
		return nil, err
	}

	list, err := s.credentials.All(ctx)
	if err != nil {
		return nil, err
	}

	suffix := "@" + strings.ToLower(strings.TrimSpace(domain))
	for i := range list {
		if list[i].Type != users.TypeEnterprise {
			continue
		}
		if strings.HasSuffix(strings.ToLower(list[i].Email), suffix) {
			view := list[i].Sanitize()
			s.logger.Info(ctx, "sso login succeeded", "domain", domain, "email", view.Email)
			return &view, nil
		}
	}

	return nil, shared.ErrNoEnterpriseMatch
}

// LoginWithGoogle simulates a Google sign-in. A hint email selects that
// account; without a hint the first normal-type user is used; if neither
// resolves, a transient Attendee account is synthesized and not persisted.
// The flow always produces a user.
func (s *Service) LoginWithGoogle(ctx context.Context, hintEmail string) (*users.View, error) {
	if err := s.delay(ctx, s.simulatedDelay); err != nil {
		return nil, err
	}

	if hintEmail != "" {
		user, err := s.credentials.FindByEmail(ctx, hintEmail)
		if err == nil {
			view := user.Sanitize()
			s.logger.Info(ctx, "google login matched account", "email", view.Email)
			return &view, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		view := synthesizeGoogleUser(hintEmail)
		s.logger.Info(ctx, "google login synthesized transient account", "email", view.Email)
		return &view, nil
	}

	list, err := s.credentials.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Type == users.TypeNormal {
			view := list[i].Sanitize()
			s.logger.Info(ctx, "google login fell back to first normal account", "email", view.Email)
			return &view, nil
		}
	}

	view := synthesizeGoogleUser("google.user@gmail.com")
	s.logger.Info(ctx, "google login synthesized transient account", "email", view.Email)
	return &view, nil
}

// synthesizeGoogleUser builds a transient Attendee view for an email the
// credential store does not know. The record is never written back.
func synthesizeGoogleUser(email string) users.View {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	name := []rune(strings.ReplaceAll(local, ".", " "))
	if len(name) > 0 {
		name[0] = unicode.ToUpper(name[0])
	}

	return users.View{
		ID:    uuid.NewString(),
		Email: email,
		Role:  users.RoleAttendee,
		Type:  users.TypeNormal,
		Name:  string(name),
	}
}
