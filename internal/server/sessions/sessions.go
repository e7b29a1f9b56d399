// Package sessions manages token -> user-id entries in the ephemeral KV
// store. A session lives under the key "auth_<token>" with a fixed TTL;
// expiry happens store-side, so any session older than the TTL is simply
// unresolvable.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/kv"
)

// Store issues, resolves and revokes session tokens.
type Store struct {
	kv  kv.Store
	ttl time.Duration
}

func NewStore(kvStore kv.Store, ttl time.Duration) *Store {
	return &Store{kv: kvStore, ttl: ttl}
}

func key(token string) string {
	return common.SessionKeyPrefix + token
}

// Create generates a random unique token, stores token -> userID with the
// configured TTL, and returns the token. Store errors propagate unmasked.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	token, err := common.MakeRandHexString(32)
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	if err := s.kv.Set(ctx, key(token), userID, s.ttl); err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	return token, nil
}

// Resolve returns the user id bound to the token, or common.ErrorNotFound
// when the token is missing or expired.
func (s *Store) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.kv.Get(ctx, key(token))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("session resolve: %w", err)
	}
	return userID, nil
}

// Revoke deletes the session. Revoking an absent token is not an error.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if err := s.kv.Del(ctx, key(token)); err != nil {
		return fmt.Errorf("session revoke: %w", err)
	}
	return nil
}

// IsAlive probes the underlying store connection.
func (s *Store) IsAlive(ctx context.Context) bool {
	return s.kv.Ping(ctx) == nil
}
