package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/intuvia/internal/dashboard"
)

// WhoAmI prints the current session, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	record, err := a.sessions.Get(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	if record == nil {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn(fmt.Sprintf("Logged in as %s <%s>", record.Name, record.Email))
	printlnFn(fmt.Sprintf("Role: %s (%s account)", record.Role, record.Type))
	printlnFn(fmt.Sprintf("Session expires at %s", record.ExpiresAt.Format("2006-01-02 15:04:05")))
	return nil
}

// Dashboard renders the role-appropriate dashboard: the route it would live
// under and the features the role may use.
func (a *App) Dashboard(ctx context.Context) error {
	record, err := a.sessions.Get(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	if record == nil {
		printlnFn("Please log in first")
		return nil
	}

	route := dashboard.RouteFor(record.Role)
	printlnFn(fmt.Sprintf("[%s dashboard] %s", route, record.Name))
	for _, feature := range dashboard.PermissionsFor(record.Role) {
		printlnFn("  - " + feature)
	}
	return nil
}

// Logout ends the current session. Logging out while logged out is fine.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	printlnFn("Logged out")
	return nil
}
