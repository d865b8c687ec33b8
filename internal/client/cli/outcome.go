package cli

import (
	"errors"

	"github.com/Purvesh8762/user-management/internal/client/api"
	"github.com/Purvesh8762/user-management/internal/common"
)

// failureMessage maps every terminal error of a user action onto exactly one
// user-facing line, mirroring the outcome set of each screen:
// auth rejection, backend message, transport failure, storage failure,
// or a validation message.
func failureMessage(err error) string {
	var be *api.BackendError

	switch {
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrNotLoggedIn):
		return "Session expired, please login again"
	case errors.Is(err, common.ErrUnavailable):
		return "Backend not reachable"
	case errors.Is(err, common.ErrStorage):
		return "Local storage failure: " + err.Error()
	case errors.As(err, &be):
		return be.Error()
	default:
		return err.Error()
	}
}

// loginFailureMessage is failureMessage for the login call itself, where a
// 401 means the supplied credentials are wrong, not that a session expired.
func loginFailureMessage(err error) string {
	if errors.Is(err, common.ErrUnauthorized) {
		return "Invalid email or password"
	}
	return failureMessage(err)
}

// authRejected reports whether err means the current session is unusable and
// the user has to log in again.
func authRejected(err error) bool {
	return errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrNotLoggedIn)
}
