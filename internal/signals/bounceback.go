package signals

import (
	"context"
	"fmt"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/season"
)

// BounceBack classifies the fixture on the home team's most recent result.
// A heavy defeat reads as a bounce-back spot, a comfortable win as a side
// that may take its foot off the gas.
type BounceBack struct{}

// NewBounceBack creates the bounce-back evaluator
func NewBounceBack() *BounceBack {
	return &BounceBack{}
}

func (s *BounceBack) ID() contracts.SignalID {
	return contracts.SignalBounceBack
}

func (s *BounceBack) Name() string {
	return contracts.SignalBounceBack.String()
}

func (s *BounceBack) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	yr := season.Resolve(f.LeagueID, f.Kickoff)

	recent, err := history.RecentMatches(ctx, f.HomeTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, err
	}

	last := lastPlayed(recent, 1)
	if len(last) == 0 {
		return nil, nil
	}

	margin := last[0].Margin(f.HomeTeamID)

	var status contracts.Status
	var verdict string
	switch {
	case margin <= -2:
		status = contracts.StatusPositive
		verdict = "heavy defeat, bounce-back spot"
	case margin >= 2:
		status = contracts.StatusNegative
		verdict = "comfortable win, complacency risk"
	default:
		status = contracts.StatusNeutral
		verdict = "narrow result"
	}

	note := fmt.Sprintf("Last match margin %+d -> %s", margin, verdict)
	return result(f, s.ID(), status, float64(margin), note), nil
}
