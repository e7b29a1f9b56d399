package thumbs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/queue"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filevault/internal/server/storage"
)

// Worker consumes thumbnail jobs and writes the resized variants. Jobs for
// different files may run concurrently; a failed job is logged and dropped,
// it never affects its neighbours.
type Worker struct {
	repomanager repomanager.RepositoryManager
	storage     storage.Store
	queue       queue.Queue
	logger      logging.Logger
	concurrency int
}

func NewWorker(m repomanager.RepositoryManager, st storage.Store, q queue.Queue, l logging.Logger, concurrency int) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Worker{repomanager: m, storage: st, queue: q, logger: l, concurrency: concurrency}
}

// Run blocks, dequeueing and processing jobs on the configured number of
// goroutines until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < w.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.loop(ctx)
		}()
	}
	wg.Wait()
}

func (w *Worker) loop(ctx context.Context) {
	for {
		job, err := w.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, queue.ErrClosed) {
				return
			}
			w.logger.Error(ctx, "error dequeueing job", "error", err)
			continue
		}

		if err := w.Process(ctx, job); err != nil {
			w.logger.Error(ctx, "thumbnail job failed",
				"fileId", job.FileID, "userId", job.UserID, "error", err)
			continue
		}
		w.logger.Debug(ctx, "thumbnail job completed", "fileId", job.FileID)
	}
}

// Process runs a single job to completion. The error messages for missing
// job fields and an unknown file are part of the external contract. A resize
// failure aborts the remaining widths; thumbnails already written stay.
func (w *Worker) Process(ctx context.Context, job models.ThumbnailJob) error {
	if job.FileID == "" {
		return errors.New("Missing fileId")
	}
	if job.UserID == "" {
		return errors.New("Missing userId")
	}

	file, err := w.repomanager.Files().GetByIDAndUser(ctx, job.FileID, job.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return errors.New("File not found")
		}
		return fmt.Errorf("error loading file entry: %v", err)
	}

	if file.Type != models.TypeImage || file.LocalPath == "" {
		return fmt.Errorf("entry %s has no image content", file.ID)
	}

	original, err := w.storage.Read(ctx, file.LocalPath)
	if err != nil {
		return fmt.Errorf("error reading original: %v", err)
	}

	for _, width := range Widths {
		thumb, err := Thumbnail(original, width)
		if err != nil {
			return fmt.Errorf("error resizing to width %d: %v", width, err)
		}
		if err := w.storage.Write(ctx, storage.ThumbKey(file.LocalPath, width), thumb); err != nil {
			return fmt.Errorf("error writing thumbnail width %d: %v", width, err)
		}
	}
	return nil
}
