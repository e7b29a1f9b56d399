// Package kv abstracts the ephemeral key-value store holding session
// tokens. Expiry is the store's job: a Set with a TTL becomes unreadable
// once the TTL elapses, without any scanning on our side.
package kv

import (
	"context"
	"time"
)

// Store is a minimal TTL'd key-value store. Get returns
// common.ErrorNotFound for missing or expired keys. Del is idempotent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
