// Package metadata is the client's local key/value cache. The session blob
// lives here under SessionKey.
package metadata

import (
	"context"
)

// SessionKey holds the cached user and token as one JSON document.
const SessionKey = "user"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
