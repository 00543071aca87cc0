package kv

import (
	"context"
	"errors"
)

var (
	// ErrKeyMiss reports a key with no stored value. Callers treat this as
	// "absent, use defaults", never as a storage failure.
	ErrKeyMiss = errors.New("kv: key not found")

	// ErrUnavailable reports that the backing store could not serve the
	// request. Propagated to callers unmodified; the core performs no retries.
	ErrUnavailable = errors.New("kv: storage unavailable")
)

// Store defines the key-value collaborator the journal core persists through.
// Values are JSON documents; dest on Get must be a pointer.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Health(ctx context.Context) error
	Close() error
}
