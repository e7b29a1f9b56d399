package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/dbx"
	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// PostgresRepository implements file-entry storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). The seq column pins insertion order for listing.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanFile(row interface{ Scan(dest ...any) error }) (*models.File, error) {
	f := &models.File{}
	var parentID string
	var localPath sql.NullString

	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Type, &f.IsPublic, &parentID, &localPath)
	if err != nil {
		return nil, err
	}

	f.ParentID = models.ParentID(parentID)
	f.LocalPath = localPath.String
	return f, nil
}

func (r *PostgresRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {

	query :=
		`INSERT INTO files (id, user_id, name, type, is_public, parent_id, local_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	id := uuid.NewString()
	localPath := sql.NullString{String: file.LocalPath, Valid: file.LocalPath != ""}

	_, err := r.db.ExecContext(ctx, query,
		id, file.UserID, file.Name, file.Type, file.IsPublic, string(file.ParentID), localPath)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	file.ID = id
	return file, nil
}

const selectFileColumns = `SELECT id, user_id, name, type, is_public, parent_id, local_path FROM files`

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	f, err := scanFile(r.db.QueryRowContext(ctx, selectFileColumns+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.File, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	f, err := scanFile(r.db.QueryRowContext(ctx,
		selectFileColumns+` WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, parent models.ParentID, skip, limit int64) ([]*models.File, error) {

	var rows *sql.Rows
	var err error

	if parent.IsRoot() {
		rows, err = r.db.QueryContext(ctx,
			selectFileColumns+` WHERE user_id = $1 ORDER BY seq OFFSET $2 LIMIT $3`,
			userID, skip, limit)
	} else {
		rows, err = r.db.QueryContext(ctx,
			selectFileColumns+` WHERE user_id = $1 AND parent_id = $2 ORDER BY seq OFFSET $3 LIMIT $4`,
			userID, string(parent), skip, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) SetPublic(ctx context.Context, id, userID string, isPublic bool) (*models.File, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	query :=
		`UPDATE files SET is_public = $1
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, user_id, name, type, is_public, parent_id, local_path
		 `

	f, err := scanFile(r.db.QueryRowContext(ctx, query, isPublic, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
