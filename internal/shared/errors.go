// Package shared defines sentinel errors and small utilities used across
// the Intuvia demo. Callers should use errors.Is to match these values.
package shared

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Login errors.
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Simulated SSO errors.
	ErrNoEnterpriseMatch = errors.New("no enterprise account for domain")

	// Reset-token lifecycle errors.
	ErrNoActiveRequest = errors.New("no active reset request")
	ErrTokenMismatch   = errors.New("reset token mismatch")
	ErrTokenExpired    = errors.New("reset token expired")
	ErrUserNotFound    = errors.New("user not found")
)
