package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/predictpro/backend/internal/api"
	"github.com/predictpro/backend/internal/api/handlers"
	"github.com/predictpro/backend/internal/data/repos"
	"github.com/predictpro/backend/pkg/config"
	"github.com/predictpro/backend/pkg/database"
	"github.com/predictpro/backend/pkg/logger"
	"github.com/predictpro/backend/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST API server",
	Long: `Starts the HTTP API server.

Endpoints:
  GET  /health                      - Health check
  GET  /api/fixtures/{date}         - Fixtures on a day (YYYY-MM-DD)
  GET  /api/fixtures/{id}/signals   - Stored signal results
  POST /api/compute/{id}            - Schedule signal computation

Example:
  go run ./cmd/predictpro api
  go run ./cmd/predictpro api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// 4. Connect to Redis for the compute queue
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	queue := redis.NewQueue(redisClient, cfg.Redis.QueueName)

	// 5. Create repositories
	fixtureRepo := repos.NewFixtureRepository(db.Pool)
	resultRepo := repos.NewSignalResultRepository(db.Pool)

	// 6. Create handlers and router
	fixtureHandler := handlers.NewFixtureHandler(fixtureRepo, resultRepo, log)
	computeHandler := handlers.NewComputeHandler(fixtureRepo, queue, log)
	router := api.NewRouter(fixtureHandler, computeHandler, log)

	// 7. Start server with graceful shutdown
	server := api.New(cfg, log, router)
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
