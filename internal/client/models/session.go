// Package models holds the client-side data types: the locally persisted
// Session and the backend-owned ManagedUser.
package models

// Session is the locally cached "currently logged in as" record.
//
// Credential is the full value of the Authorization header, i.e.
// "{type} {token}" as returned by the login endpoint. It is treated as an
// opaque string everywhere except the expiry peek in the auth service.
//
// Credential and Email are written together on login and cleared together
// on logout or rejection; a record with only one of them present is invalid
// and must be treated as "not logged in".
type Session struct {
	Credential string
	Email      string
	AdminID    int64
}

// IsComplete reports whether both halves of the session invariant are present.
func (s Session) IsComplete() bool {
	return s.Credential != "" && s.Email != ""
}

// IsEmpty reports whether nothing at all is cached.
func (s Session) IsEmpty() bool {
	return s.Credential == "" && s.Email == ""
}
