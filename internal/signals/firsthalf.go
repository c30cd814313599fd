package signals

import (
	"context"
	"fmt"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/season"
)

// earlyGoalPool gathers the last five played matches of each side, keeping
// the sides separate so callers can enforce five per team. Both first-half
// timing rules share it.
func earlyGoalPool(ctx context.Context, f *contracts.Fixture, history contracts.History) (home, away []contracts.Match, err error) {
	yr := season.Resolve(f.LeagueID, f.Kickoff)

	homeRecent, err := history.RecentMatches(ctx, f.HomeTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, nil, err
	}
	awayRecent, err := history.RecentMatches(ctx, f.AwayTeamID, f.LeagueID, yr, fetchWindow)
	if err != nil {
		return nil, nil, err
	}

	return lastPlayed(homeRecent, 5), lastPlayed(awayRecent, 5), nil
}

// countGoalWithin counts how many of the matches had a goal by either side
// at elapsed minute 1..maxMinute. A match with no event data counts as no
// goal in the window.
func countGoalWithin(ctx context.Context, history contracts.History, matches []contracts.Match, maxMinute int) (int, error) {
	count := 0
	for _, m := range matches {
		events, err := history.MatchEvents(ctx, m.ID)
		if err != nil {
			return 0, err
		}
		if hasGoalWithin(events, maxMinute) {
			count++
		}
	}
	return count, nil
}

// FirstHalfGoalTiming classifies the fixture on how often the two sides'
// recent matches saw a goal inside the opening half hour.
type FirstHalfGoalTiming struct{}

// NewFirstHalfGoalTiming creates the first-half goal timing evaluator
func NewFirstHalfGoalTiming() *FirstHalfGoalTiming {
	return &FirstHalfGoalTiming{}
}

func (s *FirstHalfGoalTiming) ID() contracts.SignalID {
	return contracts.SignalFirstHalfGoalTiming
}

func (s *FirstHalfGoalTiming) Name() string {
	return contracts.SignalFirstHalfGoalTiming.String()
}

func (s *FirstHalfGoalTiming) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	home, away, err := earlyGoalPool(ctx, f, history)
	if err != nil {
		return nil, err
	}
	if len(home) < 5 || len(away) < 5 {
		return nil, nil
	}

	pool := append(home, away...)
	count, err := countGoalWithin(ctx, history, pool, 30)
	if err != nil {
		return nil, err
	}

	var status contracts.Status
	switch {
	case count >= 7:
		status = contracts.StatusPositive
	case count <= 4:
		status = contracts.StatusNegative
	default:
		status = contracts.StatusNeutral
	}

	note := fmt.Sprintf("%d/%d games with a goal before minute 30", count, len(pool))
	return result(f, s.ID(), status, float64(count), note), nil
}

// FirstHalfOver05 classifies the fixture on how often the two sides'
// recent matches produced at least one first-half goal.
type FirstHalfOver05 struct{}

// NewFirstHalfOver05 creates the first-half over-0.5 evaluator
func NewFirstHalfOver05() *FirstHalfOver05 {
	return &FirstHalfOver05{}
}

func (s *FirstHalfOver05) ID() contracts.SignalID {
	return contracts.SignalFirstHalfOver05
}

func (s *FirstHalfOver05) Name() string {
	return contracts.SignalFirstHalfOver05.String()
}

func (s *FirstHalfOver05) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
	home, away, err := earlyGoalPool(ctx, f, history)
	if err != nil {
		return nil, err
	}
	if len(home) < 5 || len(away) < 5 {
		return nil, nil
	}

	pool := append(home, away...)
	count, err := countGoalWithin(ctx, history, pool, 45)
	if err != nil {
		return nil, err
	}

	var status contracts.Status
	switch {
	case count >= 8:
		status = contracts.StatusPositive
	case count <= 5:
		status = contracts.StatusNegative
	default:
		status = contracts.StatusNeutral
	}

	note := fmt.Sprintf("%d/%d games with a first-half goal", count, len(pool))
	return result(f, s.ID(), status, float64(count), note), nil
}
