// Package users defines the user repository contract and its backends.
package users

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// Repository persists user accounts. Create returns
// common.ErrorAlreadyExists when the email is taken; lookups return
// common.ErrorNotFound for unknown or malformed ids.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}
