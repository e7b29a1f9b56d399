package queue

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// ErrClosed is returned by operations on a closed MemoryQueue.
var ErrClosed = errors.New("queue closed")

// MemoryQueue is an in-process Queue used by tests and single-process
// setups where the server and worker share one binary.
type MemoryQueue struct {
	jobs chan models.ThumbnailJob
}

func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{jobs: make(chan models.ThumbnailJob, capacity)}
}

func (q *MemoryQueue) Enqueue(ctx context.Context, job models.ThumbnailJob) error {
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) Dequeue(ctx context.Context) (models.ThumbnailJob, error) {
	select {
	case job, ok := <-q.jobs:
		if !ok {
			return models.ThumbnailJob{}, ErrClosed
		}
		return job, nil
	case <-ctx.Done():
		return models.ThumbnailJob{}, ctx.Err()
	}
}

func (q *MemoryQueue) Close() error {
	close(q.jobs)
	return nil
}

// Len reports the number of queued jobs; tests use it to assert enqueue
// side effects.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}
