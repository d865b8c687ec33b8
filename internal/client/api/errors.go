package api

import "fmt"

// BackendError is a non-2xx, non-401 response from the backend. Message is
// the response body text, which the backend uses for user-facing failures
// ("Email already registered", "Invalid OTP", ...).
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error: status %d", e.StatusCode)
	}
	return e.Message
}
