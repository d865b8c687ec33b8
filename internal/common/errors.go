// Package common defines shared constants and sentinel errors used across
// the user-management client layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Session state errors.
	ErrNotLoggedIn = errors.New("not logged in")
	ErrStorage     = errors.New("session storage failure")

	// Backend interaction errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("backend unreachable")

	// Validation errors (client-side, raised before any network call).
	ErrInvalidName      = errors.New("name must contain only letters and spaces (max 50)")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPassword  = errors.New("password must be at least 8 characters and contain an upper-case letter, a lower-case letter, a digit and one of @$!%*?&#")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
