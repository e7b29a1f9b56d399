package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// RedisQueue is a Redis list: Enqueue pushes to the head, the worker pops
// from the tail, so jobs come out in enqueue order. Multiple workers can
// pop from the same list; each job is delivered to exactly one of them.
type RedisQueue struct {
	client *redis.Client
	name   string
}

func NewRedisQueue(addr, password, name string) *RedisQueue {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &RedisQueue{client: client, name: name}
}

func (q *RedisQueue) Enqueue(ctx context.Context, job models.ThumbnailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("queue marshal: %w", err)
	}

	if err := q.client.LPush(ctx, q.name, payload).Err(); err != nil {
		return fmt.Errorf("queue push: %w", err)
	}
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context) (models.ThumbnailJob, error) {
	var job models.ThumbnailJob

	// BRPOP with zero timeout blocks until a job arrives; cancelling ctx
	// aborts the call.
	res, err := q.client.BRPop(ctx, 0, q.name).Result()
	if err != nil {
		return job, fmt.Errorf("queue pop: %w", err)
	}
	if len(res) != 2 {
		return job, fmt.Errorf("queue pop: unexpected reply length %d", len(res))
	}

	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return job, fmt.Errorf("queue unmarshal: %w", err)
	}
	return job, nil
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}
