package signals

import (
	"context"
	"fmt"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/season"
)

// momentumWindow is wider than the usual fetch window because the
// home-opener check needs to see far enough back to be confident there
// really was no earlier home match this season.
const momentumWindow = 20

// MomentumPressure flags a home side riding a wave: either its first home
// match of the season (crowd pressure, fresh slate) or an unbeaten run
// across its three most recent matches. The rule always produces a row;
// thin data yields an annotated neutral rather than a skip.
type MomentumPressure struct{}

// NewMomentumPressure creates the momentum/pressure evaluator
func NewMomentumPressure() *MomentumPressure {
	return &MomentumPressure{}
}

func (s *MomentumPressure) ID() contracts.SignalID {
	return contracts.SignalMomentumPressure
}

func (s *MomentumPressure) Name() string {
	return contracts.SignalMomentumPressure.String()
}

func (s *MomentumPressure) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	yr := season.Resolve(f.LeagueID, f.Kickoff)

	recent, err := history.RecentMatches(ctx, f.HomeTeamID, f.LeagueID, yr, momentumWindow)
	if err != nil {
		return nil, err
	}

	homeOpener := true
	for _, m := range recent {
		if m.Played() && m.IsHome(f.HomeTeamID) && m.Date.Before(f.Kickoff) {
			homeOpener = false
			break
		}
	}
	if homeOpener {
		return result(f, s.ID(), contracts.StatusPositive, 1,
			"First home match of the season"), nil
	}

	played := lastPlayed(recent, 5)
	if len(played) < 3 {
		return result(f, s.ID(), contracts.StatusNeutral, 0,
			fmt.Sprintf("Only %d recent matches, not enough for a streak", len(played))), nil
	}

	unbeaten := true
	for _, m := range played[:3] {
		if m.Margin(f.HomeTeamID) < 0 {
			unbeaten = false
			break
		}
	}
	if unbeaten {
		return result(f, s.ID(), contracts.StatusPositive, 3,
			"Unbeaten in last 3 matches"), nil
	}

	return result(f, s.ID(), contracts.StatusNeutral, 0, "No momentum pattern"), nil
}
