package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Queue is a simple FIFO task queue backed by a Redis list.
// Producers push fixture ids; the compute worker pops them.
type Queue struct {
	client *Client
	name   string
}

// NewQueue creates a queue on the given Redis list key
func NewQueue(client *Client, name string) *Queue {
	return &Queue{
		client: client,
		name:   name,
	}
}

// Name returns the underlying list key
func (q *Queue) Name() string {
	return q.name
}

// Enqueue pushes a fixture id onto the queue
func (q *Queue) Enqueue(ctx context.Context, fixtureID int64) error {
	if !q.client.Enabled() {
		return fmt.Errorf("redis is disabled, cannot enqueue")
	}

	if err := q.client.Redis().RPush(ctx, q.name, fixtureID).Err(); err != nil {
		return fmt.Errorf("enqueue fixture %d: %w", fixtureID, err)
	}

	return nil
}

// Dequeue blocks up to timeout for the next fixture id.
// Returns ok=false when the queue stayed empty for the whole timeout.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (int64, bool, error) {
	if !q.client.Enabled() {
		return 0, false, fmt.Errorf("redis is disabled, cannot dequeue")
	}

	res, err := q.client.Redis().BLPop(ctx, timeout, q.name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("dequeue from %s: %w", q.name, err)
	}

	// BLPop returns [key, value]
	if len(res) != 2 {
		return 0, false, fmt.Errorf("unexpected BLPOP reply length %d", len(res))
	}

	fixtureID, err := strconv.ParseInt(res[1], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("malformed queue payload %q: %w", res[1], err)
	}

	return fixtureID, true, nil
}

// Len returns the number of pending jobs
func (q *Queue) Len(ctx context.Context) (int64, error) {
	if !q.client.Enabled() {
		return 0, nil
	}
	return q.client.Redis().LLen(ctx, q.name).Result()
}
