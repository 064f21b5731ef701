// Package metadata stores small named blobs in the local state database.
// The session snapshot lives here under fixed keys.
package metadata

import (
	"context"
)

// Repository is satisfied by SQLiteRepository.
type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}
