// Package validation implements the client-side shape checks applied to
// form input before any network call is made.
package validation

import (
	"regexp"
	"strings"

	"github.com/Purvesh8762/user-management/internal/common"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\s]{1,50}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const passwordSpecials = "@$!%*?&#"

// Name reports whether n is a valid display name: letters and spaces only,
// 1–50 characters after trimming.
func Name(n string) error {
	if !nameRe.MatchString(strings.TrimSpace(n)) {
		return common.ErrInvalidName
	}
	return nil
}

// Email reports whether e has the local@domain.tld shape.
func Email(e string) error {
	if !emailRe.MatchString(strings.TrimSpace(e)) {
		return common.ErrInvalidEmail
	}
	return nil
}

// NormalizeEmail trims and lower-cases an email the way the login form does.
func NormalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// Password enforces the registration password rule: at least 8 characters,
// at least one lower-case letter, one upper-case letter, one digit and one
// of @$!%*?&#, with no other characters allowed. The rule is decomposed
// into individual scans because RE2 has no lookahead.
func Password(p string) error {
	if len(p) < 8 {
		return common.ErrInvalidPassword
	}
	var lower, upper, digit, special bool
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return common.ErrInvalidPassword
		}
	}
	if !lower || !upper || !digit || !special {
		return common.ErrInvalidPassword
	}
	return nil
}
