package signals

import (
	"context"
	"fmt"
	"sort"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/pkg/logger"
)

// Registry holds the signal catalogue keyed by id
type Registry struct {
	evaluators map[contracts.SignalID]Evaluator
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{evaluators: make(map[contracts.SignalID]Evaluator)}
}

// Register adds an evaluator; registering the same id twice replaces the
// earlier one
func (r *Registry) Register(e Evaluator) {
	r.evaluators[e.ID()] = e
}

// Get returns the evaluator for an id
func (r *Registry) Get(id contracts.SignalID) (Evaluator, bool) {
	e, ok := r.evaluators[id]
	return e, ok
}

// All returns the registered evaluators in id order
func (r *Registry) All() []Evaluator {
	out := make([]Evaluator, 0, len(r.evaluators))
	for _, e := range r.evaluators {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// DefaultRegistry builds the full catalogue
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewForm())
	r.Register(NewOver15())
	r.Register(NewBTTS())
	r.Register(NewHomeAwayStrength())
	r.Register(NewLeagueStakes())
	r.Register(NewBounceBack())
	r.Register(NewMomentumPressure())
	r.Register(NewFirstHalfGoalTiming())
	r.Register(NewFirstHalfOver05())
	r.Register(NewFastStarters())
	r.Register(NewHomePressureStart())
	r.Register(NewLineup())
	return r
}

// Dispatcher runs the whole catalogue against one fixture.
//
// One misbehaving evaluator never takes the others down: errors and panics
// are logged and the remaining evaluators still run. Evaluators that skip
// (nil result) contribute nothing to the returned slice.
type Dispatcher struct {
	registry *Registry
	history  contracts.History
	logger   *logger.Logger
}

// NewDispatcher creates a dispatcher over a registry and a history provider
func NewDispatcher(registry *Registry, history contracts.History, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		history:  history,
		logger:   log,
	}
}

// Run evaluates every registered signal for the fixture and returns the
// results that were actually produced
func (d *Dispatcher) Run(ctx context.Context, fixture *contracts.Fixture) []contracts.SignalResult {
	evaluators := d.registry.All()
	results := make([]contracts.SignalResult, 0, len(evaluators))

	for _, e := range evaluators {
		res, err := d.evaluate(ctx, e, fixture)
		if err != nil {
			d.logger.WithError(err).WithFields(map[string]interface{}{
				"fixture_id": fixture.ID,
				"signal":     e.Name(),
			}).Error("Signal evaluation failed")
			continue
		}
		if res == nil {
			d.logger.WithFields(map[string]interface{}{
				"fixture_id": fixture.ID,
				"signal":     e.Name(),
			}).Debug("Signal skipped, insufficient inputs")
			continue
		}
		results = append(results, *res)
	}

	return results
}

func (d *Dispatcher) evaluate(ctx context.Context, e Evaluator, fixture *contracts.Fixture) (res *contracts.SignalResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("evaluator %s panicked: %v", e.Name(), r)
		}
	}()
	return e.Evaluate(ctx, fixture, d.history)
}
