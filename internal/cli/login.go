package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/intuvia/internal/dashboard"
	"github.com/dmitrijs2005/intuvia/internal/shared"
	"github.com/dmitrijs2005/intuvia/internal/users"
	"github.com/dmitrijs2005/intuvia/internal/validation"
)

// Login runs the email+password form flow: validate inputs, wait the
// simulated submit delay, authenticate, and open a session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if r := validation.Email(email); !r.Valid {
		printlnFn(r.Message)
		return nil
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if r := validation.Password(string(password), false); !r.Valid {
		printlnFn(r.Message)
		return nil
	}

	// The form-submit feel: the orchestrator itself is synchronous.
	if err := a.delay(ctx, a.config.SimulatedNetworkDelay); err != nil {
		return err
	}

	view, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		printlnFn(errorMessage(err))
		return nil
	}

	return a.openSession(ctx, *view)
}

// openSession persists the session for an authenticated user and announces
// the dashboard they land on.
func (a *App) openSession(ctx context.Context, view users.View) error {
	if _, err := a.sessions.Create(ctx, view); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn(fmt.Sprintf("Welcome, %s! Opening the %s dashboard.", view.Name, dashboard.RouteFor(view.Role)))
	return nil
}
