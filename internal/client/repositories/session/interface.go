// Package session implements the Credential Store: durable, process-surviving
// persistence for the single Session record, backed by a sqlite key/value table.
package session

import "context"

// Repository is the raw key/value surface over the session table.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
