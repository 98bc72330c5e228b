// Package cli implements the interactive terminal demo: a read–eval–print
// loop over the login, SSO, password-reset, and dashboard flows. It owns no
// decision logic beyond mapping service results to printed messages.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/intuvia/internal/authn"
	"github.com/dmitrijs2005/intuvia/internal/config"
	"github.com/dmitrijs2005/intuvia/internal/logging"
	"github.com/dmitrijs2005/intuvia/internal/resettokens"
	"github.com/dmitrijs2005/intuvia/internal/session"
	"github.com/dmitrijs2005/intuvia/internal/storage"
	"github.com/dmitrijs2005/intuvia/internal/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       storage.Store
	credentials *users.CredentialStore
	sessions    *session.Manager
	resets      *resettokens.Service
	auth        *authn.Service
	delay       authn.DelayFunc
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	store, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	credentials := users.NewCredentialStore(store, logger)
	if err := credentials.Initialize(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config:      cfg,
		logger:      logger,
		store:       store,
		credentials: credentials,
		sessions:    session.NewManager(store, cfg.SessionValidityDuration, logger),
		resets:      resettokens.NewService(store, credentials, cfg.ResetTokenValidityDuration, cfg.ResetBaseURL, logger),
		auth:        authn.NewService(credentials, authn.Sleep, cfg.SimulatedNetworkDelay, logger),
		delay:       authn.Sleep,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()

	printlnFn("Welcome to the Intuvia demo (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.status(ctx) }, scanner)
}

// status renders the prompt decoration: the logged-in email or nothing.
func (a *App) status(ctx context.Context) string {
	record, err := a.sessions.Get(ctx)
	if err != nil || record == nil {
		return ""
	}
	return "(" + record.Email + ") "
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	ok, err := a.sessions.IsLoggedIn(ctx)
	if err != nil {
		a.logger.Error(ctx, "session check failed", "error", err)
		return false
	}
	return ok
}
