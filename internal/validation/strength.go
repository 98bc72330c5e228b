package validation

import "strings"

// Label grades an overall password strength score.
type Label string

const (
	LabelWeak   Label = "weak"
	LabelMedium Label = "medium"
	LabelStrong Label = "strong"
)

// symbols is the punctuation set that satisfies the symbol requirement.
const symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Strength is the per-requirement breakdown of a password strength check.
// Score counts the satisfied requirements (0–5); AllMet is true only when
// every requirement holds.
type Strength struct {
	Length bool
	Upper  bool
	Lower  bool
	Digit  bool
	Symbol bool
	Score  int
	Label  Label
	AllMet bool
}

// PasswordStrength evaluates the five independent password requirements:
// length ≥ 8, an uppercase letter, a lowercase letter, a digit, and a symbol.
func PasswordStrength(s string) Strength {
	strength := Strength{
		Length: len(s) >= 8,
		Symbol: strings.ContainsAny(s, symbols),
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			strength.Upper = true
		case r >= 'a' && r <= 'z':
			strength.Lower = true
		case r >= '0' && r <= '9':
			strength.Digit = true
		}
	}

	for _, met := range []bool{strength.Length, strength.Upper, strength.Lower, strength.Digit, strength.Symbol} {
		if met {
			strength.Score++
		}
	}

	switch {
	case strength.Score <= 2:
		strength.Label = LabelWeak
	case strength.Score <= 4:
		strength.Label = LabelMedium
	default:
		strength.Label = LabelStrong
	}
	strength.AllMet = strength.Score == 5

	return strength
}
