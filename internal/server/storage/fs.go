package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filevault/internal/common"
)

// FSStore keeps content objects as files under a root directory. The root
// is created on first use. Keys are absolute paths, so entries keep working
// if the configured root later changes.
type FSStore struct {
	root string
}

func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

func (s *FSStore) Save(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("storage mkdir: %w", err)
	}

	key := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(key, data, 0o644); err != nil {
		return "", fmt.Errorf("storage write: %w", err)
	}

	return key, nil
}

func (s *FSStore) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(key, data, 0o644); err != nil {
		return fmt.Errorf("storage write: %w", err)
	}
	return nil
}

func (s *FSStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("storage read: %w", err)
	}
	return data, nil
}
