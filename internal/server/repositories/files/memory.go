package files

import (
	"context"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// MemoryRepository is an in-process Repository used by tests. The backing
// slice preserves insertion order, matching the listing contract.
type MemoryRepository struct {
	mu     sync.RWMutex
	files  []*models.File
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(_ context.Context, file *models.File) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *file
	stored.ID = "f" + strconv.Itoa(r.nextID)
	r.nextID++
	r.files = append(r.files, &stored)

	file.ID = stored.ID
	return file, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.File, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.files {
		if f.ID == id {
			copy := *f
			return &copy, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByIDAndUser(_ context.Context, id, userID string) (*models.File, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.files {
		if f.ID == id && f.UserID == userID {
			copy := *f
			return &copy, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) List(_ context.Context, userID string, parent models.ParentID, skip, limit int64) ([]*models.File, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.File, 0)
	var matched int64
	for _, f := range r.files {
		if f.UserID != userID {
			continue
		}
		if !parent.IsRoot() && f.ParentID != parent {
			continue
		}
		matched++
		if matched <= skip {
			continue
		}
		if int64(len(result)) >= limit {
			break
		}
		copy := *f
		result = append(result, &copy)
	}
	return result, nil
}

func (r *MemoryRepository) SetPublic(_ context.Context, id, userID string, isPublic bool) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.files {
		if f.ID == id && f.UserID == userID {
			f.IsPublic = isPublic
			copy := *f
			return &copy, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.files)), nil
}
