// Package metadata is a small key/value table used as the durable mirror of
// the client session. The same table layout is served from SQLite and
// PostgreSQL; only placeholder syntax differs.
package metadata

import (
	"context"
)

// Repository reads and writes metadata rows. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
}
