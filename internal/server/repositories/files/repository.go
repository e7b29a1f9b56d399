// Package files defines the file-entry repository contract and its backends.
package files

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// Repository persists file entries. Lookups scoped to a user return
// common.ErrorNotFound when the entry is absent or owned by someone else;
// malformed ids behave like absent entries. List returns entries in
// insertion order, filtered by parent only when parent is not the root.
type Repository interface {
	Create(ctx context.Context, file *models.File) (*models.File, error)
	GetByID(ctx context.Context, id string) (*models.File, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*models.File, error)
	List(ctx context.Context, userID string, parent models.ParentID, skip, limit int64) ([]*models.File, error)
	SetPublic(ctx context.Context, id, userID string, isPublic bool) (*models.File, error)
	Count(ctx context.Context) (int64, error)
}
