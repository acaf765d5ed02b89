// Package kv is the storefront's durable key-value collaborator. State
// slots are written whole as JSON blobs and read back whole at startup;
// there are no partial updates and no versioning of stored values.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key was never written.
var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
