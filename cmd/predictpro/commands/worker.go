package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/predictpro/backend/internal/compute"
	"github.com/predictpro/backend/internal/data/repos"
	"github.com/predictpro/backend/internal/external/apifootball"
	"github.com/predictpro/backend/internal/signals"
	"github.com/predictpro/backend/internal/worker"
	"github.com/predictpro/backend/pkg/config"
	"github.com/predictpro/backend/pkg/database"
	"github.com/predictpro/backend/pkg/logger"
	"github.com/predictpro/backend/pkg/redis"
)

// workerCmd represents the worker command
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start a compute worker",
	Long: `Starts a worker that consumes the compute queue and evaluates
all signals for each queued fixture.

Multiple workers may run side by side; results are upserted so the
last writer wins.

Example:
  go run ./cmd/predictpro worker`,
	RunE: runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// 4. Connect to Redis
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	queue := redis.NewQueue(redisClient, cfg.Redis.QueueName)

	// 5. Wire the compute pipeline
	fixtureRepo := repos.NewFixtureRepository(db.Pool)
	resultRepo := repos.NewSignalResultRepository(db.Pool)
	history := apifootball.NewClient(cfg, log)
	dispatcher := signals.NewDispatcher(signals.DefaultRegistry(), history, log)
	service := compute.NewService(fixtureRepo, resultRepo, dispatcher, log)

	// 6. Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := worker.New(queue, service, log)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("worker: %w", err)
	}

	log.Info("Worker stopped")
	return nil
}
