// Package worker consumes the compute queue and evaluates one fixture per
// job. Concurrent workers are safe: evaluators are pure and the result
// store is a last-writer-wins upsert.
package worker

import (
	"context"
	"time"

	"github.com/predictpro/backend/internal/compute"
	"github.com/predictpro/backend/pkg/logger"
	"github.com/predictpro/backend/pkg/redis"
)

const (
	popTimeout = 5 * time.Second
	maxRetries = 3
	retryDelay = 2 * time.Second
)

// Worker pulls fixture ids off the queue and computes their signals
type Worker struct {
	queue   *redis.Queue
	service *compute.Service
	logger  *logger.Logger
}

// New creates a worker
func New(queue *redis.Queue, service *compute.Service, log *logger.Logger) *Worker {
	return &Worker{
		queue:   queue,
		service: service,
		logger:  log,
	}
}

// Run consumes jobs until the context is cancelled. The blocking pop
// wakes up regularly so cancellation is honored within popTimeout.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.WithField("queue", w.queue.Name()).Info("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Worker stopping")
			return ctx.Err()
		default:
		}

		fixtureID, ok, err := w.queue.Dequeue(ctx, popTimeout)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("Worker stopping")
				return ctx.Err()
			}
			w.logger.WithError(err).Error("Failed to dequeue job")
			time.Sleep(retryDelay)
			continue
		}
		if !ok {
			continue
		}

		w.process(ctx, fixtureID)
	}
}

// process runs one job with bounded retries; a job that keeps failing is
// logged and dropped rather than requeued forever
func (w *Worker) process(ctx context.Context, fixtureID int64) {
	log := w.logger.WithField("fixture_id", fixtureID)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := w.service.ComputeFixture(ctx, fixtureID); err != nil {
			lastErr = err
			log.WithError(err).WithField("attempt", attempt).Warn("Compute attempt failed")
			if attempt < maxRetries {
				select {
				case <-time.After(retryDelay):
				case <-ctx.Done():
					return
				}
			}
			continue
		}
		return
	}

	log.WithError(lastErr).Error("Job failed after all retries")
}
