package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		code  Code
	}{
		{"empty", "", false, CodeRequired},
		{"whitespace only", "   ", false, CodeRequired},
		{"missing at", "userexample.com", false, CodeInvalidFormat},
		{"missing domain", "user@", false, CodeInvalidFormat},
		{"missing tld", "user@example", false, CodeInvalidFormat},
		{"dot without tld", "user@example.", false, CodeInvalidFormat},
		{"missing local part", "@example.com", false, CodeInvalidFormat},
		{"space inside", "us er@example.com", false, CodeInvalidFormat},
		{"plain address", "user@example.com", true, ""},
		{"subdomain", "a@mail.intuvia.com", true, ""},
		{"plus tag", "user+tag@example.co", true, ""},
		{"surrounding whitespace trimmed", "  user@example.com  ", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Email(tt.input)
			assert.Equal(t, tt.valid, r.Valid)
			assert.Equal(t, tt.code, r.Code)
			if !tt.valid {
				assert.NotEmpty(t, r.Message)
			}
		})
	}
}

func TestRequiredField(t *testing.T) {
	assert.False(t, RequiredField("").Valid)
	assert.Equal(t, CodeRequired, RequiredField("  \t").Code)
	assert.True(t, RequiredField("anything").Valid)
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		score  int
		label  Label
		allMet bool
	}{
		{"empty", "", 0, LabelWeak, false},
		{"lowercase only", "abc", 1, LabelWeak, false},
		{"lower and digit", "abc123", 2, LabelWeak, false},
		{"long lower digit", "abcdef123", 3, LabelMedium, false},
		{"missing symbol", "Abcdef12", 4, LabelMedium, false},
		{"all requirements", "Abcdef1!", 5, LabelStrong, true},
		{"symbols from set", "Xy1?long", 5, LabelStrong, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PasswordStrength(tt.input)
			assert.Equal(t, tt.score, got.Score, "score")
			assert.Equal(t, tt.label, got.Label, "label")
			assert.Equal(t, tt.allMet, got.AllMet, "allMet")
		})
	}
}

func TestPasswordStrength_Breakdown(t *testing.T) {
	got := PasswordStrength("abcdefgh")
	assert.True(t, got.Length)
	assert.True(t, got.Lower)
	assert.False(t, got.Upper)
	assert.False(t, got.Digit)
	assert.False(t, got.Symbol)
}

func TestPassword(t *testing.T) {
	t.Run("empty is required", func(t *testing.T) {
		r := Password("", false)
		assert.False(t, r.Valid)
		assert.Equal(t, CodeRequired, r.Code)
	})

	t.Run("weak allowed when not enforcing", func(t *testing.T) {
		assert.True(t, Password("abc", false).Valid)
	})

	t.Run("weak rejected when enforcing", func(t *testing.T) {
		r := Password("abc", true)
		assert.False(t, r.Valid)
		assert.Equal(t, CodeWeakPassword, r.Code)
		require.NotNil(t, r.Strength)
		assert.Equal(t, LabelWeak, r.Strength.Label)
	})

	t.Run("strong accepted when enforcing", func(t *testing.T) {
		assert.True(t, Password("NewPass1!", true).Valid)
	})
}

func TestPasswordMatch(t *testing.T) {
	t.Run("empty confirmation", func(t *testing.T) {
		r := PasswordMatch("a", "")
		assert.False(t, r.Valid)
		assert.Equal(t, CodeRequired, r.Code)
	})

	t.Run("mismatch", func(t *testing.T) {
		r := PasswordMatch("Abcdef1!", "Abcdef1?")
		assert.False(t, r.Valid)
		assert.Equal(t, CodeMismatch, r.Code)
	})

	t.Run("match", func(t *testing.T) {
		assert.True(t, PasswordMatch("Abcdef1!", "Abcdef1!").Valid)
	})
}
