// Package queue decouples thumbnail generation from the upload request.
// The queue is durable with at-least-once delivery; reprocessing a job is
// harmless because thumbnail output keys are deterministic.
package queue

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// Queue carries thumbnail jobs from the upload handler to the worker.
type Queue interface {
	// Enqueue appends a job. It returns once the job is accepted by the
	// queue; the caller never waits for processing.
	Enqueue(ctx context.Context, job models.ThumbnailJob) error

	// Dequeue blocks until a job is available or ctx is done.
	Dequeue(ctx context.Context) (models.ThumbnailJob, error)

	Close() error
}
