package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/predictpro/backend/internal/data/repos"
	"github.com/predictpro/backend/internal/scheduler"
	"github.com/predictpro/backend/internal/scheduler/jobs"
	"github.com/predictpro/backend/pkg/config"
	"github.com/predictpro/backend/pkg/database"
	"github.com/predictpro/backend/pkg/logger"
	"github.com/predictpro/backend/pkg/redis"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Start the job scheduler",
	Long: `Starts the cron scheduler.

Jobs:
  daily_evaluation - enqueues every fixture of the day at 6 AM UTC
  lineup_refresh   - every 15 minutes, re-enqueues fixtures kicking
                     off within the next hour

Example:
  go run ./cmd/predictpro scheduler`,
	RunE: runScheduler,
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
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
	fixtureRepo := repos.NewFixtureRepository(db.Pool)

	// 5. Register jobs
	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewEvaluationJob(fixtureRepo, queue, log)); err != nil {
		return fmt.Errorf("add evaluation job: %w", err)
	}
	if err := sched.AddJob(jobs.NewLineupRefreshJob(fixtureRepo, queue, log)); err != nil {
		return fmt.Errorf("add lineup refresh job: %w", err)
	}

	// 6. Run until interrupted
	sched.Start()
	defer sched.Stop()

	fmt.Println("Scheduler running, press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	return nil
}
