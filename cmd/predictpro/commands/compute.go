package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/predictpro/backend/internal/compute"
	"github.com/predictpro/backend/internal/data/repos"
	"github.com/predictpro/backend/internal/external/apifootball"
	"github.com/predictpro/backend/internal/signals"
	"github.com/predictpro/backend/pkg/config"
	"github.com/predictpro/backend/pkg/database"
	"github.com/predictpro/backend/pkg/logger"
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute <fixture-id>",
	Short: "Evaluate all signals for one fixture",
	Long: `Runs the full signal catalogue against a single fixture
synchronously and stores the results. Useful for operators and
debugging; the worker does the same thing off the queue.

Example:
  go run ./cmd/predictpro compute 12345`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

var computeTimeout time.Duration

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().DurationVar(&computeTimeout, "timeout", 2*time.Minute, "overall computation timeout")
}

func runCompute(cmd *cobra.Command, args []string) error {
	fixtureID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("fixture id must be numeric: %q", args[0])
	}

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

	// 4. Wire the compute pipeline
	fixtureRepo := repos.NewFixtureRepository(db.Pool)
	resultRepo := repos.NewSignalResultRepository(db.Pool)
	history := apifootball.NewClient(cfg, log)
	dispatcher := signals.NewDispatcher(signals.DefaultRegistry(), history, log)
	service := compute.NewService(fixtureRepo, resultRepo, dispatcher, log)

	// 5. Run
	ctx, cancel := context.WithTimeout(context.Background(), computeTimeout)
	defer cancel()

	if err := service.ComputeFixture(ctx, fixtureID); err != nil {
		return fmt.Errorf("compute fixture %d: %w", fixtureID, err)
	}

	// 6. Print what was stored
	results, err := resultRepo.ListByFixture(ctx, fixtureID)
	if err != nil {
		return fmt.Errorf("list results: %w", err)
	}

	fmt.Printf("Fixture %d: %d signal results\n", fixtureID, len(results))
	for _, res := range results {
		fmt.Printf("  %-24s %s  value=%.2f  %s\n", res.SignalID, res.Status, res.Value, res.Note)
	}

	return nil
}
