package db

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// KV is a local key/value store holding whole values under fixed keys.
// Get returns ErrNotFound when the key has never been written.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
