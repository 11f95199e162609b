// Package metadata persists small string values (the bearer token and its
// bookkeeping) in the client's local key/value table.
package metadata

import (
	"context"
)

// Repository is a key/value store. Get reports ok=false for missing keys;
// Delete ignores keys that do not exist.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}
