package signals

import (
	"context"
	"fmt"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/season"
)

// HomePressureStart flags a home team entering the match under pressure
// after losing at least two of its last three, or cruising after winning
// all three.
type HomePressureStart struct{}

// NewHomePressureStart creates the home pressure evaluator
func NewHomePressureStart() *HomePressureStart {
	return &HomePressureStart{}
}

func (s *HomePressureStart) ID() contracts.SignalID {
	return contracts.SignalHomePressureStart
}

func (s *HomePressureStart) Name() string {
	return contracts.SignalHomePressureStart.String()
}

func (s *HomePressureStart) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	yr := season.Resolve(f.LeagueID, f.Kickoff)

	recent, err := history.RecentMatches(ctx, f.HomeTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, err
	}

	last3 := lastPlayed(recent, 3)
	if len(last3) < 3 {
		return nil, nil
	}

	losses := countLosses(last3, f.HomeTeamID)
	wins := countWins(last3, f.HomeTeamID)

	switch {
	case losses >= 2:
		note := fmt.Sprintf("Home team lost %d of last 3, under pressure", losses)
		return result(f, s.ID(), contracts.StatusPositive, float64(losses), note), nil
	case wins == 3:
		return result(f, s.ID(), contracts.StatusNegative, 3,
			"Home team won all of last 3, no pressure"), nil
	default:
		note := fmt.Sprintf("Mixed recent run: %d wins, %d losses in last 3", wins, losses)
		return result(f, s.ID(), contracts.StatusNeutral, 0, note), nil
	}
}
