package repomanager

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/server/repositories/files"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/users"
)

// MemoryRepositoryManager bundles the in-memory repositories; tests wire it
// instead of a real store.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	files *files.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		files: files.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Files() files.Repository {
	return m.files
}

func (m *MemoryRepositoryManager) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Close(_ context.Context) error {
	return nil
}
