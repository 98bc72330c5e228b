// Package validation contains the pure input-validation rules for the login
// and password-reset forms. Every rule returns a Result value; rules never
// return errors and never panic, so callers can always render the outcome
// directly.
package validation

import (
	"regexp"
	"strings"
)

// Code classifies why a value failed validation.
type Code string

const (
	CodeRequired      Code = "Required"
	CodeInvalidFormat Code = "InvalidFormat"
	CodeWeakPassword  Code = "WeakPassword"
	CodeMismatch      Code = "Mismatch"
)

// Result is the outcome of a single validation rule. When Valid is false,
// Code and Message describe the failure; Strength is populated only by
// password rules that evaluated strength.
type Result struct {
	Valid    bool
	Code     Code
	Message  string
	Strength *Strength
}

func ok() Result {
	return Result{Valid: true}
}

func fail(code Code, message string) Result {
	return Result{Code: code, Message: message}
}

// emailRe accepts local@domain.tld shapes: at least one character before the
// '@', one after it, and a '.' followed by at least one more character.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email validates an email address for the login and reset forms.
func Email(s string) Result {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fail(CodeRequired, "Email is required")
	}
	if !emailRe.MatchString(trimmed) {
		return fail(CodeInvalidFormat, "Enter a valid email address")
	}
	return ok()
}

// RequiredField validates that a free-form field is not blank.
func RequiredField(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail(CodeRequired, "This field is required")
	}
	return ok()
}

// Password validates a password value. When enforceStrength is set, all five
// strength requirements must hold; the Result then carries the full strength
// breakdown so the caller can show which requirements are unmet.
func Password(s string, enforceStrength bool) Result {
	if s == "" {
		return fail(CodeRequired, "Password is required")
	}
	if enforceStrength {
		strength := PasswordStrength(s)
		if !strength.AllMet {
			r := fail(CodeWeakPassword, "Password does not meet the strength requirements")
			r.Strength = &strength
			return r
		}
	}
	return ok()
}

// PasswordMatch validates a password confirmation field.
func PasswordMatch(password, confirmation string) Result {
	if confirmation == "" {
		return fail(CodeRequired, "Please confirm your password")
	}
	if password != confirmation {
		return fail(CodeMismatch, "Passwords do not match")
	}
	return ok()
}
