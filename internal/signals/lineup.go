package signals

import (
	"context"
	"fmt"
	"time"

	"github.com/predictpro/backend/internal/contracts"
)

// lineupLeadTime is how close to kickoff the published lineup becomes
// worth checking; providers publish roughly an hour before.
const lineupLeadTime = time.Hour

// Lineup checks the home team's published starting eleven shortly before
// kickoff. Earlier than an hour out, or when the provider has nothing yet,
// the evaluator skips so a later recomputation can fill the row in.
type Lineup struct {
	now func() time.Time
}

// NewLineup creates the lineup evaluator using the wall clock
func NewLineup() *Lineup {
	return &Lineup{now: time.Now}
}

// NewLineupWithClock creates the lineup evaluator with an injected clock
func NewLineupWithClock(now func() time.Time) *Lineup {
	return &Lineup{now: now}
}

func (s *Lineup) ID() contracts.SignalID {
	return contracts.SignalLineup
}

func (s *Lineup) Name() string {
	return contracts.SignalLineup.String()
}

func (s *Lineup) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	if s.now().Before(f.Kickoff.Add(-lineupLeadTime)) {
		return nil, nil
	}

	lineups, err := history.Lineups(ctx, f.APIFixtureID)
	if err != nil {
		return nil, err
	}

	var home *contracts.Lineup
	for i := range lineups {
		if lineups[i].TeamID == f.HomeTeamID {
			home = &lineups[i]
			break
		}
	}
	if home == nil {
		return nil, nil
	}

	count := len(home.Starters)

	var status contracts.Status
	var verdict string
	switch {
	case count == 11:
		status = contracts.StatusPositive
		verdict = "full starting eleven published"
	case count < 11:
		status = contracts.StatusNegative
		verdict = "incomplete lineup"
	default:
		status = contracts.StatusNeutral
		verdict = "unexpected starter count"
	}

	note := fmt.Sprintf("%d starters listed, %s", count, verdict)
	return result(f, s.ID(), status, float64(count), note), nil
}
