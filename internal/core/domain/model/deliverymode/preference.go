package deliverymode

import (
	"errors"
	"fmt"

	"checkout/internal/pkg/errs"
)

// Policy tells how a Preference picks a delivery mode.
type Policy int

const (
	// PolicyUnknown is the zero value and never valid.
	PolicyUnknown Policy = iota
	// PolicyFree matches the cheapest mode when it costs nothing.
	PolicyFree
	// PolicyLeastExpensive matches the cheapest mode that is not free.
	PolicyLeastExpensive
	// PolicyMostExpensive matches the most expensive mode.
	PolicyMostExpensive
	// PolicyCode matches the mode with a given code.
	PolicyCode
)

// Tokens for the symbolic policies, as written in configuration.
const (
	TokenFree           = "FREE"
	TokenLeastExpensive = "LEAST_EXPENSIVE"
	TokenMostExpensive  = "MOST_EXPENSIVE"
)

func (p Policy) String() string {
	switch p {
	case PolicyFree:
		return TokenFree
	case PolicyLeastExpensive:
		return TokenLeastExpensive
	case PolicyMostExpensive:
		return TokenMostExpensive
	case PolicyCode:
		return "CODE"
	case PolicyUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// Preference is one rule of a preference list. A PolicyCode preference
// carries the code it matches; the other policies carry none.
type Preference struct {
	policy Policy
	code   string
}

func PreferFree() Preference {
	return Preference{policy: PolicyFree}
}

func PreferLeastExpensive() Preference {
	return Preference{policy: PolicyLeastExpensive}
}

func PreferMostExpensive() Preference {
	return Preference{policy: PolicyMostExpensive}
}

// PreferCode matches the delivery mode with exactly this code.
func PreferCode(code string) (Preference, error) {
	if code == "" {
		return Preference{}, errs.NewValueIsRequiredError("preference code")
	}
	return Preference{policy: PolicyCode, code: code}, nil
}

// ParsePreference maps the symbolic tokens to their policies. Any other
// non-empty token is taken as a literal delivery mode code. Tokens are
// case-sensitive: "free" is a code, "FREE" is the policy.
func ParsePreference(token string) (Preference, error) {
	switch token {
	case TokenFree:
		return PreferFree(), nil
	case TokenLeastExpensive:
		return PreferLeastExpensive(), nil
	case TokenMostExpensive:
		return PreferMostExpensive(), nil
	default:
		return PreferCode(token)
	}
}

func (p Preference) Policy() Policy {
	return p.policy
}

// Code is empty unless Policy is PolicyCode.
func (p Preference) Code() string {
	return p.code
}

func (p Preference) Validate() error {
	switch p.policy {
	case PolicyFree, PolicyLeastExpensive, PolicyMostExpensive:
		return nil
	case PolicyCode:
		if p.code == "" {
			return errs.NewValueIsRequiredError("preference code")
		}
		return nil
	case PolicyUnknown:
		return errs.NewValueIsInvalidErrorWithCause("preference", errors.New("policy is unknown"))
	default:
		return errs.NewValueIsInvalidErrorWithCause("preference", fmt.Errorf("%d is not a valid policy", p.policy))
	}
}

// String returns the token ParsePreference accepts for p.
func (p Preference) String() string {
	if p.policy == PolicyCode {
		return p.code
	}
	return p.policy.String()
}

// Preferences is an ordered preference list; earlier entries take precedence.
type Preferences []Preference

// ParsePreferences parses every token and reports all invalid ones at once.
func ParsePreferences(tokens []string) (Preferences, error) {
	prefs := make(Preferences, 0, len(tokens))
	var parseErrs []error
	for i, token := range tokens {
		p, err := ParsePreference(token)
		if err != nil {
			parseErrs = append(parseErrs, fmt.Errorf("preference[%d]: %w", i, err))
			continue
		}
		prefs = append(prefs, p)
	}
	if err := errors.Join(parseErrs...); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (ps Preferences) Validate() error {
	var validationErrs []error
	for i, p := range ps {
		if err := p.Validate(); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("preference[%d]: %w", i, err))
		}
	}
	return errors.Join(validationErrs...)
}

// Tokens renders the list back into configuration tokens.
func (ps Preferences) Tokens() []string {
	tokens := make([]string, 0, len(ps))
	for _, p := range ps {
		tokens = append(tokens, p.String())
	}
	return tokens
}
