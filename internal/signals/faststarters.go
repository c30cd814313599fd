package signals

import (
	"context"
	"fmt"
	"strings"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/season"
)

// FastStarters classifies the fixture on how often each side is involved in
// first-half goals: goals scored and conceded at minutes 1-45, each counted
// per match across the team's last five played matches.
type FastStarters struct{}

// NewFastStarters creates the fast starters evaluator
func NewFastStarters() *FastStarters {
	return &FastStarters{}
}

func (s *FastStarters) ID() contracts.SignalID {
	return contracts.SignalFastStarters
}

func (s *FastStarters) Name() string {
	return contracts.SignalFastStarters.String()
}

func (s *FastStarters) Evaluate(ctx context.Context, f *contracts.Fixture, history contracts.History) (*contracts.SignalResult, error) {
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
	if len(home5) < 5 || len(away5) < 5 {
		return nil, nil
	}

	homeScored, homeConceded, homeMissing, err := firstHalfCounts(ctx, history, home5, f.HomeTeamID)
	if err != nil {
		return nil, err
	}
	awayScored, awayConceded, awayMissing, err := firstHalfCounts(ctx, history, away5, f.AwayTeamID)
	if err != nil {
		return nil, err
	}

	var factors []string
	if homeScored >= 4 {
		factors = append(factors, fmt.Sprintf("home scored first-half in %d/5", homeScored))
	}
	if awayConceded >= 4 {
		factors = append(factors, fmt.Sprintf("away conceded first-half in %d/5", awayConceded))
	}
	if homeConceded >= 4 {
		factors = append(factors, fmt.Sprintf("home conceded first-half in %d/5", homeConceded))
	}
	if awayScored >= 4 {
		factors = append(factors, fmt.Sprintf("away scored first-half in %d/5", awayScored))
	}

	quietDefense := homeConceded <= 1 && awayScored <= 1
	quietAttack := homeScored <= 1 && awayConceded <= 1

	var status contracts.Status
	var note string
	switch {
	case len(factors) > 0 && !quietDefense:
		status = contracts.StatusPositive
		note = strings.Join(factors, "; ")
	case quietAttack || quietDefense:
		status = contracts.StatusNegative
		note = fmt.Sprintf("Quiet first halves: home %d scored/%d conceded, away %d scored/%d conceded",
			homeScored, homeConceded, awayScored, awayConceded)
	default:
		status = contracts.StatusNeutral
		note = fmt.Sprintf("Mixed first-half pattern: home %d scored/%d conceded, away %d scored/%d conceded",
			homeScored, homeConceded, awayScored, awayConceded)
	}

	if missing := homeMissing + awayMissing; missing > 0 {
		note += fmt.Sprintf(" (%d matches without event data)", missing)
	}

	return result(f, s.ID(), status, float64(homeScored+awayScored), note), nil
}
