package signals

import (
	"context"
	"fmt"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/leagues"
	"github.com/predictpro/backend/internal/season"
)

// LeagueStakes classifies the fixture on what the league table says is at
// stake: a side fighting for the top four or against relegation makes the
// match matter, two mid-table sides make it a dead rubber.
//
// The rule declines to classify while the table tells us too little:
// standings unavailable, a team missing from the table, or either side
// with fewer than five matches played.
type LeagueStakes struct{}

// NewLeagueStakes creates the league stakes evaluator
func NewLeagueStakes() *LeagueStakes {
	return &LeagueStakes{}
}

func (s *LeagueStakes) ID() contracts.SignalID {
	return contracts.SignalLeagueStakes
}

func (s *LeagueStakes) Name() string {
	return contracts.SignalLeagueStakes.String()
}

func (s *LeagueStakes) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	yr := season.Resolve(f.LeagueID, f.Kickoff)

	standings, err := history.Standings(ctx, f.LeagueID, yr)
	if err != nil {
		return nil, err
	}
	if len(standings) == 0 {
		return nil, nil
	}

	var home, away *contracts.StandingsEntry
	for i := range standings {
		switch standings[i].TeamID {
		case f.HomeTeamID:
			home = &standings[i]
		case f.AwayTeamID:
			away = &standings[i]
		}
	}
	if home == nil || away == nil {
		return nil, nil
	}

	// Too early in the season to gauge stakes
	if home.Played < 5 || away.Played < 5 {
		return nil, nil
	}

	numTeams := len(standings)
	relegationSpots := leagues.RelegationSpots(f.LeagueID)
	relegationStart := numTeams - relegationSpots + 1

	inTopFour := func(rank int) bool { return rank <= leagues.TopFourThreshold }
	inRelegation := func(rank int) bool {
		return relegationSpots > 0 && rank >= relegationStart && rank <= numTeams
	}

	var status contracts.Status
	var note string
	if inTopFour(home.Rank) || inTopFour(away.Rank) || inRelegation(home.Rank) || inRelegation(away.Rank) {
		status = contracts.StatusPositive
		note = fmt.Sprintf("Home rank=%d, Away rank=%d -> at least one in top-4 or relegation zone", home.Rank, away.Rank)
	} else {
		status = contracts.StatusNegative
		note = fmt.Sprintf("Home rank=%d, Away rank=%d -> both in mid-table", home.Rank, away.Rank)
	}

	return result(f, s.ID(), status, float64(home.Rank-away.Rank), note), nil
}
