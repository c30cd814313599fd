package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/pkg/logger"
	"github.com/predictpro/backend/pkg/redis"
)

// EvaluationJob enqueues every fixture kicking off today for signal
// computation. The morning sweep gives most signals their first pass;
// the lineup refresh picks up what is only known close to kickoff.
type EvaluationJob struct {
	fixtures contracts.FixtureRepository
	queue    *redis.Queue
	logger   *logger.Logger
}

// NewEvaluationJob creates a new evaluation job
func NewEvaluationJob(fixtures contracts.FixtureRepository, queue *redis.Queue, log *logger.Logger) *EvaluationJob {
	return &EvaluationJob{
		fixtures: fixtures,
		queue:    queue,
		logger:   log,
	}
}

// Name returns the job name
func (j *EvaluationJob) Name() string {
	return "daily_evaluation"
}

// Schedule returns the cron schedule (every day at 6 AM UTC)
func (j *EvaluationJob) Schedule() string {
	return "0 0 6 * * *"
}

// Run enqueues all of today's fixtures
func (j *EvaluationJob) Run(ctx context.Context) error {
	today := time.Now().UTC()

	fixtures, err := j.fixtures.ListByDate(ctx, today)
	if err != nil {
		return fmt.Errorf("list fixtures: %w", err)
	}

	enqueued := 0
	for _, f := range fixtures {
		if err := j.queue.Enqueue(ctx, f.ID); err != nil {
			return fmt.Errorf("enqueue fixture %d: %w", f.ID, err)
		}
		enqueued++
	}

	j.logger.WithFields(map[string]interface{}{
		"date":     today.Format("2006-01-02"),
		"fixtures": enqueued,
	}).Info("Daily evaluation sweep enqueued")

	return nil
}

// LineupRefreshJob re-enqueues fixtures kicking off within the next hour
// so the lineup signal gets evaluated once the starting eleven is out.
type LineupRefreshJob struct {
	fixtures contracts.FixtureRepository
	queue    *redis.Queue
	logger   *logger.Logger
}

// NewLineupRefreshJob creates a new lineup refresh job
func NewLineupRefreshJob(fixtures contracts.FixtureRepository, queue *redis.Queue, log *logger.Logger) *LineupRefreshJob {
	return &LineupRefreshJob{
		fixtures: fixtures,
		queue:    queue,
		logger:   log,
	}
}

// Name returns the job name
func (j *LineupRefreshJob) Name() string {
	return "lineup_refresh"
}

// Schedule returns the cron schedule (every 15 minutes)
func (j *LineupRefreshJob) Schedule() string {
	return "0 */15 * * * *"
}

// Run enqueues today's fixtures that kick off within the next hour
func (j *LineupRefreshJob) Run(ctx context.Context) error {
	now := time.Now().UTC()

	fixtures, err := j.fixtures.ListByDate(ctx, now)
	if err != nil {
		return fmt.Errorf("list fixtures: %w", err)
	}

	enqueued := 0
	for _, f := range fixtures {
		if f.Kickoff.Before(now) || f.Kickoff.After(now.Add(time.Hour)) {
			continue
		}
		if err := j.queue.Enqueue(ctx, f.ID); err != nil {
			return fmt.Errorf("enqueue fixture %d: %w", f.ID, err)
		}
		enqueued++
	}

	if enqueued > 0 {
		j.logger.WithField("fixtures", enqueued).Info("Lineup refresh enqueued")
	}

	return nil
}
