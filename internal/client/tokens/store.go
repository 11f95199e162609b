// Package tokens keeps the client's single bearer-token slot.
//
// Presence of a token means the client believes it may be authenticated;
// absence means anonymous. The store never inspects the token: expiry is
// checked by package claims at every use.
package tokens

import (
	"context"
	"time"
)

// Store persists exactly one token. Set overwrites; Clear is idempotent.
// SavedAt reports when the current token was written, ok=false when empty.
type Store interface {
	Set(ctx context.Context, token string) error
	Get(ctx context.Context) (token string, ok bool, err error)
	Clear(ctx context.Context) error
	SavedAt(ctx context.Context) (at time.Time, ok bool, err error)
}
