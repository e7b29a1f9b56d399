package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
)

// UserService handles account registration and lookups.
type UserService struct {
	repomanager repomanager.RepositoryManager
}

func NewUserService(m repomanager.RepositoryManager) *UserService {
	return &UserService{repomanager: m}
}

// Register creates a user with a bcrypt-hashed password. The validation
// messages are part of the external contract.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, common.NewValidationError("Missing email")
	}
	if password == "" {
		return nil, common.NewValidationError("Missing password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	u, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}

// GetByID loads a user by id. Unknown ids yield common.ErrorNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users().GetByID(ctx, id)
}
