package cli

import (
	"errors"

	"github.com/dmitrijs2005/intuvia/internal/shared"
)

// errorMessage maps service sentinels to the messages the demo shows. Every
// failure is terminal for its operation; the user simply resubmits.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrAccountNotFound):
		return "No account found with this email"
	case errors.Is(err, shared.ErrInvalidCredentials):
		return "Incorrect email or password"
	case errors.Is(err, shared.ErrNoEnterpriseMatch):
		return "No enterprise account is registered for this domain"
	case errors.Is(err, shared.ErrNoActiveRequest):
		return "No active password reset request"
	case errors.Is(err, shared.ErrTokenMismatch):
		return "This reset link is no longer valid"
	case errors.Is(err, shared.ErrTokenExpired):
		return "This reset link has expired, please request a new one"
	case errors.Is(err, shared.ErrUserNotFound):
		return "No account found with this email"
	default:
		return "Something went wrong, please try again"
	}
}
