package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/intuvia/internal/shared"
	"github.com/dmitrijs2005/intuvia/internal/validation"
)

// Forgot starts a password reset: issue a token for the given email and show
// the reset link. A real deployment would mail the link; the demo prints it.
func (a *App) Forgot(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter your account email", a.out)
	if err != nil {
		return err
	}
	if r := validation.Email(email); !r.Valid {
		printlnFn(r.Message)
		return nil
	}

	resetURL, err := a.resets.Request(ctx, email)
	if err != nil {
		printlnFn(errorMessage(err))
		return nil
	}

	printlnFn("Password reset requested. Your reset link:")
	printlnFn("  " + resetURL)
	return nil
}

// Reset completes a password reset: verify the token, collect a new password
// meeting all strength requirements, and apply it.
func (a *App) Reset(ctx context.Context) error {
	token, err := GetSimpleText(a.reader, "Paste the token from your reset link", a.out)
	if err != nil {
		return err
	}
	if r := validation.RequiredField(token); !r.Valid {
		printlnFn(r.Message)
		return nil
	}

	password, err := GetPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if r := validation.Password(string(password), true); !r.Valid {
		printlnFn(r.Message)
		if r.Strength != nil {
			printStrength(*r.Strength)
		}
		return nil
	}

	confirmation, err := GetPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(confirmation)

	if r := validation.PasswordMatch(string(password), string(confirmation)); !r.Valid {
		printlnFn(r.Message)
		return nil
	}

	if err := a.resets.Reset(ctx, token, string(password)); err != nil {
		printlnFn(errorMessage(err))
		return nil
	}

	printlnFn("Password updated. You can now log in with your new password.")
	return nil
}

// printStrength lists which strength requirements a candidate password missed.
func printStrength(s validation.Strength) {
	requirements := []struct {
		met  bool
		text string
	}{
		{s.Length, "at least 8 characters"},
		{s.Upper, "an uppercase letter"},
		{s.Lower, "a lowercase letter"},
		{s.Digit, "a digit"},
		{s.Symbol, "a symbol"},
	}
	printlnFn(fmt.Sprintf("Password strength: %s (%d/5)", s.Label, s.Score))
	for _, r := range requirements {
		if !r.met {
			printlnFn("  missing: " + r.text)
		}
	}
}
