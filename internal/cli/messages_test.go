package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/intuvia/internal/shared"
)

func TestErrorMessage_KnownSentinels(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{shared.ErrAccountNotFound, "No account found with this email"},
		{shared.ErrInvalidCredentials, "Incorrect email or password"},
		{shared.ErrNoEnterpriseMatch, "No enterprise account is registered for this domain"},
		{shared.ErrNoActiveRequest, "No active password reset request"},
		{shared.ErrTokenMismatch, "This reset link is no longer valid"},
		{shared.ErrTokenExpired, "This reset link has expired, please request a new one"},
		{shared.ErrUserNotFound, "No account found with this email"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, errorMessage(tt.err))
	}
}

func TestErrorMessage_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("reset flow: %w", shared.ErrTokenExpired)
	assert.Equal(t, "This reset link has expired, please request a new one", errorMessage(err))
}

func TestErrorMessage_UnknownError(t *testing.T) {
	assert.Equal(t, "Something went wrong, please try again", errorMessage(errors.New("weird")))
}
