package signals

import (
	"context"
	"fmt"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/season"
)

// HomeAwayStrength compares the home team's record at its own ground with
// the away team's record on the road, each over the last five played
// matches at that venue.
type HomeAwayStrength struct{}

// NewHomeAwayStrength creates the home/away strength evaluator
func NewHomeAwayStrength() *HomeAwayStrength {
	return &HomeAwayStrength{}
}

func (s *HomeAwayStrength) ID() contracts.SignalID {
	return contracts.SignalHomeAwayStrength
}

func (s *HomeAwayStrength) Name() string {
	return contracts.SignalHomeAwayStrength.String()
}

func (s *HomeAwayStrength) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	yr := season.Resolve(f.LeagueID, f.Kickoff)

	homeRecent, err := history.RecentMatches(ctx, f.HomeTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, err
	}
	awayRecent, err := history.RecentMatches(ctx, f.AwayTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, err
	}

	home5 := lastPlayedAtVenue(homeRecent, f.HomeTeamID, true, 5)
	away5 := lastPlayedAtVenue(awayRecent, f.AwayTeamID, false, 5)

	homeWins := countWins(home5, f.HomeTeamID)
	awayWins := countWins(away5, f.AwayTeamID)

	var status contracts.Status
	var verdict string
	switch {
	case homeWins >= 3 && awayWins <= 1:
		status = contracts.StatusPositive
		verdict = "Home strong, Away weak"
	case homeWins < 3 && awayWins >= 3:
		status = contracts.StatusNegative
		verdict = "Home weak, Away strong"
	default:
		status = contracts.StatusNeutral
		verdict = "Neutral strength"
	}

	note := fmt.Sprintf("%d/%d home wins, %d/%d away wins -> %s",
		homeWins, len(home5), awayWins, len(away5), verdict)
	return result(f, s.ID(), status, float64(homeWins-awayWins), note), nil
}
