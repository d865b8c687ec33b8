package models

// ManagedUser is a user record administered through the list/add/delete
// commands. It is owned by the backend; the client only ever holds a
// transient in-memory slice fetched on demand and rebuilt after every
// mutation.
type ManagedUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
