// Package credentials holds the pure email and password acceptance rules.
// It has no dependencies on storage or transport so the rules can be
// exercised in isolation.
package credentials

import (
	"regexp"
	"strings"
)

// Reason identifies one way a password failed the policy.
type Reason string

const (
	ReasonLength           Reason = "length"
	ReasonComplexity       Reason = "complexity"
	ReasonContainsIdentity Reason = "contains-identity"
	ReasonRepetition       Reason = "repetition"
)

var reasonMessages = map[Reason]string{
	ReasonLength:           "at least 8 characters",
	ReasonComplexity:       "use a mix of upper/lowercase, numbers, and symbols (3 of 4)",
	ReasonContainsIdentity: "password must not contain your email name",
	ReasonRepetition:       "avoid repeated characters",
}

// Message returns the human-readable form of a reason.
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return string(r)
}

type Result struct {
	OK      bool
	Reasons []Reason
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has local@domain.tld shape: a non-space
// local part, a domain containing at least one dot, and a non-space TLD.
func ValidEmail(s string) bool {
	return emailShape.MatchString(strings.ToLower(s))
}

// CheckPassword evaluates every policy rule and accumulates all failures;
// it never short-circuits so the caller can present the complete list.
func CheckPassword(password string, email string) Result {
	var reasons []Reason

	if len([]rune(password)) < 8 {
		reasons = append(reasons, ReasonLength)
	}
	if characterClasses(password) < 3 {
		reasons = append(reasons, ReasonComplexity)
	}
	if local := localPart(email); local != "" &&
		strings.Contains(strings.ToLower(password), strings.ToLower(local)) {
		reasons = append(reasons, ReasonContainsIdentity)
	}
	if hasTripleRepeat(password) {
		reasons = append(reasons, ReasonRepetition)
	}

	return Result{OK: len(reasons) == 0, Reasons: reasons}
}

func characterClasses(s string) int {
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r != '_' && r != ' ' && r != '\t' && r != '\n' && r != '\r':
			symbol = true
		}
	}
	count := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			count++
		}
	}
	return count
}

func hasTripleRepeat(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func localPart(email string) string {
	at := strings.Index(email, "@")
	if at < 0 {
		return strings.TrimSpace(email)
	}
	return email[:at]
}
