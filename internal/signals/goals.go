package signals

import (
	"context"
	"fmt"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/season"
)

// combinedPool fetches the last five played matches of each side and
// returns them as one pool. Both the Over-1.5 and BTTS rules require the
// full ten matches; with less the pool is reported as insufficient.
func combinedPool(ctx context.Context, f *contracts.Fixture, history contracts.History) ([]contracts.Match, error) {
	yr := season.Resolve(f.LeagueID, f.Kickoff)

	homeRecent, err := history.RecentMatches(ctx, f.HomeTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, err
	}
	awayRecent, err := history.RecentMatches(ctx, f.AwayTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, err
	}

	pool := lastPlayed(homeRecent, 5)
	pool = append(pool, lastPlayed(awayRecent, 5)...)
	return pool, nil
}

// Over15 classifies the fixture on how often the two sides' recent
// matches produced two or more goals.
type Over15 struct{}

// NewOver15 creates the over-1.5 goals evaluator
func NewOver15() *Over15 {
	return &Over15{}
}

func (s *Over15) ID() contracts.SignalID {
	return contracts.SignalOver15
}

func (s *Over15) Name() string {
	return contracts.SignalOver15.String()
}

func (s *Over15) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	pool, err := combinedPool(ctx, f, history)
	if err != nil {
		return nil, err
	}

	// The rate is only meaningful over the full ten-match pool
	if len(pool) < 10 {
		return nil, nil
	}

	overCount := 0
	for _, m := range pool {
		if m.TotalGoals() >= 2 {
			overCount++
		}
	}
	rate := float64(overCount) / float64(len(pool))

	var status contracts.Status
	switch {
	case rate >= 0.80:
		status = contracts.StatusPositive
	case rate < 0.60:
		status = contracts.StatusNegative
	default:
		status = contracts.StatusNeutral
	}

	note := fmt.Sprintf("%d/%d games with 2+ goals (%.0f%%)", overCount, len(pool), rate*100)
	return result(f, s.ID(), status, rate, note), nil
}

// BTTS classifies the fixture on how often both sides scored in the two
// teams' recent matches.
type BTTS struct{}

// NewBTTS creates the both-teams-to-score evaluator
func NewBTTS() *BTTS {
	return &BTTS{}
}

func (s *BTTS) ID() contracts.SignalID {
	return contracts.SignalBTTS
}

func (s *BTTS) Name() string {
	return contracts.SignalBTTS.String()
}

func (s *BTTS) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	pool, err := combinedPool(ctx, f, history)
	if err != nil {
		return nil, err
	}

	if len(pool) < 10 {
		return nil, nil
	}

	bttsCount := 0
	for _, m := range pool {
		if m.BothScored() {
			bttsCount++
		}
	}
	rate := float64(bttsCount) / float64(len(pool))

	var status contracts.Status
	switch {
	case rate >= 0.70:
		status = contracts.StatusPositive
	case rate < 0.50:
		status = contracts.StatusNegative
	default:
		status = contracts.StatusNeutral
	}

	note := fmt.Sprintf("%d/%d games with both teams scoring (%.0f%%)", bttsCount, len(pool), rate*100)
	return result(f, s.ID(), status, rate, note), nil
}
