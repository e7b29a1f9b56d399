package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filevault/internal/server/kv"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filevault/internal/server/sessions"
)

func TestAppServiceStatus(t *testing.T) {
	ctx := context.Background()
	m := repomanager.NewMemoryRepositoryManager()
	store := sessions.NewStore(kv.NewMemoryStore(), time.Hour)

	s := NewAppService(m, store)
	status := s.Status(ctx)
	assert.True(t, status.DB)
	assert.True(t, status.Redis)
}

func TestAppServiceStats(t *testing.T) {
	ctx := context.Background()
	m := repomanager.NewMemoryRepositoryManager()
	store := sessions.NewStore(kv.NewMemoryStore(), time.Hour)
	s := NewAppService(m, store)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Users)
	assert.Equal(t, int64(0), stats.Files)

	_, err = m.Users().Create(ctx, &models.User{Email: "a@b.c", PasswordHash: "h"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = m.Files().Create(ctx, &models.File{UserID: "u1", Name: "f", Type: models.TypeFile, LocalPath: "/x"})
		require.NoError(t, err)
	}

	stats, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(3), stats.Files)
}
