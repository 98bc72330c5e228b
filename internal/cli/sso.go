package cli

import (
	"context"

	"github.com/dmitrijs2005/intuvia/internal/validation"
)

// LoginSSO runs the simulated enterprise single-sign-on flow.
func (a *App) LoginSSO(ctx context.Context) error {
	domain, err := GetSimpleText(a.reader, "Enter your company domain (e.g. intuvia.com)", a.out)
	if err != nil {
		return err
	}
	if r := validation.RequiredField(domain); !r.Valid {
		printlnFn(r.Message)
		return nil
	}

	printlnFn("Contacting your identity provider...")
	view, err := a.auth.LoginWithSSO(ctx, domain)
	if err != nil {
		printlnFn(errorMessage(err))
		return nil
	}

	return a.openSession(ctx, *view)
}

// LoginGoogle runs the simulated Google sign-in flow. An empty hint selects
// the demo's default Google account.
func (a *App) LoginGoogle(ctx context.Context) error {
	hint, err := GetSimpleText(a.reader, "Enter Google account email (leave empty for the default account)", a.out)
	if err != nil {
		return err
	}
	if hint != "" {
		if r := validation.Email(hint); !r.Valid {
			printlnFn(r.Message)
			return nil
		}
	}

	printlnFn("Signing in with Google...")
	view, err := a.auth.LoginWithGoogle(ctx, hint)
	if err != nil {
		printlnFn(errorMessage(err))
		return nil
	}

	return a.openSession(ctx, *view)
}
