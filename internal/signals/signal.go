// Package signals implements the catalogue of predictive signal rules.
//
// Each evaluator turns a fixture plus recent match history into a
// three-state classification (Y / N / -) with a numeric value and a note.
// Evaluators are pure given their inputs; all data access goes through the
// contracts.History boundary, and an empty provider response is always
// handled as insufficient data, never as a failure.
package signals

import (
	"context"

	"github.com/predictpro/backend/internal/contracts"
)

// fetchWindow is how many recent matches are requested when five played
// ones are needed; the provider may include scheduled or abandoned
// matches that get filtered out.
const fetchWindow = 15

// Evaluator is one signal rule.
//
// Evaluate returns (nil, nil) when the rule declines to produce a result
// at all ("skipped", no row is written). That is distinct from returning
// an explicit neutral result with a note; both outcomes occur in the
// catalogue and are preserved as observably different states.
type Evaluator interface {
	ID() contracts.SignalID
	Name() string
	Evaluate(ctx context.Context, fixture *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error)
}

// result is a small constructor shared by all evaluators
func result(f *contracts.Fixture, id contracts.SignalID, status contracts.Status, value float64, note string) *contracts.SignalResult {
	return &contracts.SignalResult{
		FixtureID: f.ID,
		SignalID:  id,
		Status:    status,
		Value:     value,
		Note:      note,
	}
}
