// Package compute ties fixture loading, signal evaluation and persistence
// together into the one inbound operation the rest of the system calls.
package compute

import (
	"context"
	"fmt"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/signals"
	"github.com/predictpro/backend/pkg/logger"
)

// Service evaluates all signals for a fixture and stores the results
type Service struct {
	fixtures   contracts.FixtureRepository
	results    contracts.SignalResultRepository
	dispatcher *signals.Dispatcher
	logger     *logger.Logger
}

// NewService creates a compute service
func NewService(
	fixtures contracts.FixtureRepository,
	results contracts.SignalResultRepository,
	dispatcher *signals.Dispatcher,
	log *logger.Logger,
) *Service {
	return &Service{
		fixtures:   fixtures,
		results:    results,
		dispatcher: dispatcher,
		logger:     log,
	}
}

// ComputeFixture loads the fixture, runs every signal against it and
// upserts whatever results were produced. Signals that skipped leave no
// row; rows from a previous run for signals that now produce a result are
// overwritten.
func (s *Service) ComputeFixture(ctx context.Context, fixtureID int64) error {
	fixture, err := s.fixtures.GetByID(ctx, fixtureID)
	if err != nil {
		return fmt.Errorf("failed to load fixture %d: %w", fixtureID, err)
	}

	results := s.dispatcher.Run(ctx, fixture)

	if err := s.results.SaveAll(ctx, fixtureID, results); err != nil {
		return fmt.Errorf("failed to save results for fixture %d: %w", fixtureID, err)
	}

	s.logger.WithFields(map[string]interface{}{
		"fixture_id": fixtureID,
		"results":    len(results),
	}).Info("Fixture signals computed")

	return nil
}
