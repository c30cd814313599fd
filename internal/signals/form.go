package signals

import (
	"context"
	"fmt"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/season"
)

// Form classifies a fixture on the two sides' recent form: the home
// team's wins and the away team's losses across each side's last five
// played matches. The rule is binary; there is no neutral outcome.
type Form struct{}

// NewForm creates the form evaluator
func NewForm() *Form {
	return &Form{}
}

func (s *Form) ID() contracts.SignalID {
	return contracts.SignalForm
}

func (s *Form) Name() string {
	return contracts.SignalForm.String()
}

func (s *Form) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	yr := season.Resolve(f.LeagueID, f.Kickoff)

	homeRecent, err := history.RecentMatches(ctx, f.HomeTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, err
	}
	awayRecent, err := history.RecentMatches(ctx, f.AwayTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, err
	}

	home5 := lastPlayed(homeRecent, 5)
	away5 := lastPlayed(awayRecent, 5)

	homeWins := countWins(home5, f.HomeTeamID)
	awayLosses := countLosses(away5, f.AwayTeamID)

	status := contracts.StatusNegative
	if homeWins >= 3 || awayLosses >= 3 {
		status = contracts.StatusPositive
	}

	note := fmt.Sprintf("Home wins: %d/%d, Away losses: %d/%d", homeWins, len(home5), awayLosses, len(away5))
	return result(f, s.ID(), status, float64(homeWins-awayLosses), note), nil
}
