package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/queue"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filevault/internal/server/storage"
)

// PageSize is the fixed number of entries returned per listing page.
const PageSize = 20

// UploadRequest carries the fields of an entry-creation call. Data holds
// base64-encoded content and stays empty for folders.
type UploadRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ParentID models.ParentID `json:"parentId"`
	IsPublic bool            `json:"isPublic"`
	Data     string          `json:"data"`
}

// FileService manages file entries: creation with hierarchy validation,
// owner-scoped reads, visibility flips and content serving.
type FileService struct {
	repomanager repomanager.RepositoryManager
	storage     storage.Store
	queue       queue.Queue
}

func NewFileService(m repomanager.RepositoryManager, st storage.Store, q queue.Queue) *FileService {
	return &FileService{repomanager: m, storage: st, queue: q}
}

// Upload validates the request, persists content before metadata and, for
// images, enqueues a thumbnail job. Validation failures return before any
// persistence happens.
func (s *FileService) Upload(ctx context.Context, userID string, req *UploadRequest) (*models.File, error) {
	if req.Name == "" {
		return nil, common.NewValidationError("Missing name")
	}
	if !models.ValidType(req.Type) {
		return nil, common.NewValidationError("Missing type")
	}
	if req.Type != models.TypeFolder && req.Data == "" {
		return nil, common.NewValidationError("Missing data")
	}

	if !req.ParentID.IsRoot() {
		parent, err := s.repomanager.Files().GetByID(ctx, string(req.ParentID))
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.NewValidationError("Parent not found")
			}
			return nil, fmt.Errorf("error loading parent: %v", err)
		}
		if parent.Type != models.TypeFolder {
			return nil, common.NewValidationError("Parent is not a folder")
		}
	}

	file := &models.File{
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		IsPublic: req.IsPublic,
		ParentID: req.ParentID,
	}

	if req.Type != models.TypeFolder {
		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, common.NewValidationError("Missing data")
		}
		// content first, so metadata never points at a missing object
		key, err := s.storage.Save(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("error writing content: %v", err)
		}
		file.LocalPath = key
	}

	created, err := s.repomanager.Files().Create(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("error creating file entry: %v", err)
	}

	if created.Type == models.TypeImage {
		job := models.ThumbnailJob{UserID: created.UserID, FileID: created.ID}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			return nil, fmt.Errorf("error enqueueing thumbnail job: %v", err)
		}
	}

	return created, nil
}

// Get returns the entry scoped to its owner, or common.ErrorNotFound.
func (s *FileService) Get(ctx context.Context, userID, id string) (*models.File, error) {
	return s.repomanager.Files().GetByIDAndUser(ctx, id, userID)
}

// List returns one page of the user's entries under the given parent.
// An unmatched parent yields an empty page, not an error.
func (s *FileService) List(ctx context.Context, userID string, parent models.ParentID, page int64) ([]*models.File, error) {
	if page < 0 {
		page = 0
	}
	entries, err := s.repomanager.Files().List(ctx, userID, parent, page*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %v", err)
	}
	if entries == nil {
		entries = []*models.File{}
	}
	return entries, nil
}

// SetVisibility flips isPublic on an owner-scoped entry and returns the
// refreshed record.
func (s *FileService) SetVisibility(ctx context.Context, userID, id string, isPublic bool) (*models.File, error) {
	return s.repomanager.Files().SetPublic(ctx, id, userID, isPublic)
}

// ReadContent loads the entry by id alone and serves its bytes. viewerID is
// the resolved session user, or empty for anonymous callers; a private entry
// viewed by anyone but its owner behaves exactly like an absent one. width,
// when non-zero, selects the thumbnail variant instead of the original.
func (s *FileService) ReadContent(ctx context.Context, viewerID, id string, width int) ([]byte, string, error) {
	file, err := s.repomanager.Files().GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if file.Type == models.TypeFolder {
		return nil, "", common.NewValidationError("A folder doesn't have content")
	}

	if !file.IsPublic && (viewerID == "" || viewerID != file.UserID) {
		return nil, "", common.ErrorNotFound
	}

	key := file.LocalPath
	if width > 0 {
		key = storage.ThumbKey(key, width)
	}

	data, err := s.storage.Read(ctx, key)
	if err != nil {
		return nil, "", err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(file.Name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return data, mimeType, nil
}
