// Package phone holds the dialing codes offered by the console and the local-number
// rules attached to each of them.
package phone

import (
	"regexp"
	"strings"
)

// DefaultCountryCode is preselected for new records and used when a stored number
// carries no recognized code.
const DefaultCountryCode = "+91"

// Rule describes the accepted shape of the local digits for one dialing code.
type Rule struct {
	MinDigits int
	MaxDigits int
	// Leading restricts the first digit when non-empty.
	Leading string
}

var codes = []string{"+91", "+1", "+44", "+61", "+81", "+49", "+971"}

var rules = map[string]Rule{
	"+91":  {MinDigits: 10, MaxDigits: 10, Leading: "6789"},
	"+1":   {MinDigits: 10, MaxDigits: 10},
	"+44":  {MinDigits: 10, MaxDigits: 11},
	"+61":  {MinDigits: 9, MaxDigits: 9},
	"+81":  {MinDigits: 9, MaxDigits: 10},
	"+49":  {MinDigits: 10, MaxDigits: 11},
	"+971": {MinDigits: 9, MaxDigits: 9},
}

var fallbackRule = Rule{MinDigits: 7, MaxDigits: 15}

var digitsRe = regexp.MustCompile(`^\d+$`)

// Codes returns the enumerated dialing codes in display order.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// IsKnown reports whether code belongs to the enumerated set.
func IsKnown(code string) bool {
	_, ok := rules[code]
	return ok
}

// RuleFor returns the rule for code, or the generic 7-15 digit rule for unknown codes.
func RuleFor(code string) Rule {
	if rule, ok := rules[code]; ok {
		return rule
	}
	return fallbackRule
}

// Matches reports whether digits is an acceptable local number for code.
func Matches(code, digits string) bool {
	return RuleFor(code).Match(digits)
}

// Match checks digits against the rule.
func (r Rule) Match(digits string) bool {
	if !digitsRe.MatchString(digits) {
		return false
	}
	if len(digits) < r.MinDigits || len(digits) > r.MaxDigits {
		return false
	}
	if r.Leading != "" && !strings.ContainsRune(r.Leading, rune(digits[0])) {
		return false
	}

	return true
}

// Decompose splits a stored phone number into its dialing code and local digits.
// The longest enumerated code that prefixes the number wins. When none matches the
// default code is assumed and a single leading '+' is dropped; for numbers with an
// unknown code this is a best-effort guess.
func Decompose(full string) (string, string) {
	matched := ""
	for _, code := range codes {
		if strings.HasPrefix(full, code) && len(code) > len(matched) {
			matched = code
		}
	}

	if matched == "" {
		return DefaultCountryCode, strings.TrimPrefix(full, "+")
	}

	return matched, strings.TrimPrefix(full, matched)
}

// Compose rebuilds the stored form of a phone number.
func Compose(code, local string) string {
	return code + strings.TrimSpace(local)
}

// DigitsOnly drops every character that is not a decimal digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
