package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/kv"
)

func newStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	return NewStore(mem, 24*time.Hour), mem
}

func TestCreateAndResolve(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	token, err := s.Create(ctx, "user42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user42", userID)
}

func TestCreate_TokensAreUnique(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := s.Create(ctx, "u")
		require.NoError(t, err)
		require.False(t, seen[token], "token issued twice: %s", token)
		seen[token] = true
	}
}

func TestResolve_UnknownToken(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Resolve(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestResolve_ExpiredToken(t *testing.T) {
	mem := kv.NewMemoryStore()
	s := NewStore(mem, 24*time.Hour)
	ctx := context.Background()

	base := time.Now()
	mem.SetClock(func() time.Time { return base })
	token, err := s.Create(ctx, "user42")
	require.NoError(t, err)

	mem.SetClock(func() time.Time { return base.Add(25 * time.Hour) })
	_, err = s.Resolve(ctx, token)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRevoke_Idempotent(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	token, err := s.Create(ctx, "user42")
	require.NoError(t, err)

	require.NoError(t, s.Revoke(ctx, token))
	_, err = s.Resolve(ctx, token)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// second revoke is a no-op, not an error
	require.NoError(t, s.Revoke(ctx, token))
}

func TestIsAlive(t *testing.T) {
	s, _ := newStore(t)
	assert.True(t, s.IsAlive(context.Background()))
}
