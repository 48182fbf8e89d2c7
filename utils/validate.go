package utils

import (
	"regexp"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. Deliverability is
// the mail relay's problem, not ours.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidName reports whether a display name is within bounds. Bounds are in
// characters, not bytes, so multi-byte names are measured fairly.
func ValidName(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 2 && n <= 100
}

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6
