package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
)

func TestUserServiceRegister(t *testing.T) {
	ctx := context.Background()
	s := NewUserService(repomanager.NewMemoryRepositoryManager())

	u, err := s.Register(ctx, "bob@dylan.com", "toto1234!")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "bob@dylan.com", u.Email)

	err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("toto1234!"))
	assert.NoError(t, err)
}

func TestUserServiceRegisterValidation(t *testing.T) {
	ctx := context.Background()
	s := NewUserService(repomanager.NewMemoryRepositoryManager())

	tests := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"no email", "", "pw", "Missing email"},
		{"no password", "a@b.c", "", "Missing password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.email, tt.password)
			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.want, ve.Message)
		})
	}
}

func TestUserServiceRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	s := NewUserService(repomanager.NewMemoryRepositoryManager())

	_, err := s.Register(ctx, "bob@dylan.com", "toto1234!")
	require.NoError(t, err)

	_, err = s.Register(ctx, "bob@dylan.com", "other")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestUserServiceGetByID(t *testing.T) {
	ctx := context.Background()
	s := NewUserService(repomanager.NewMemoryRepositoryManager())

	u, err := s.Register(ctx, "bob@dylan.com", "toto1234!")
	require.NoError(t, err)

	got, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
