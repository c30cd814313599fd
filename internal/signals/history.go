package signals

import (
	"context"

	"github.com/predictpro/backend/internal/contracts"
)

// lastPlayed returns the most recent n played matches, preserving the
// provider's most-recent-first order. Unplayed (scheduled, postponed)
// matches are dropped before counting.
func lastPlayed(matches []contracts.Match, n int) []contracts.Match {
	played := make([]contracts.Match, 0, n)
	for _, m := range matches {
		if !m.Played() {
			continue
		}
		played = append(played, m)
		if len(played) == n {
			break
		}
	}
	return played
}

// lastPlayedAtVenue returns the most recent n played matches where the
// team appeared at the given venue (home or away).
func lastPlayedAtVenue(matches []contracts.Match, teamID int64, home bool, n int) []contracts.Match {
	played := make([]contracts.Match, 0, n)
	for _, m := range matches {
		if !m.Played() {
			continue
		}
		if m.IsHome(teamID) != home {
			continue
		}
		played = append(played, m)
		if len(played) == n {
			break
		}
	}
	return played
}

// countWins counts matches the team won
func countWins(matches []contracts.Match, teamID int64) int {
	wins := 0
	for _, m := range matches {
		if m.Margin(teamID) > 0 {
			wins++
		}
	}
	return wins
}

// countLosses counts matches the team lost
func countLosses(matches []contracts.Match, teamID int64) int {
	losses := 0
	for _, m := range matches {
		if m.Margin(teamID) < 0 {
			losses++
		}
	}
	return losses
}

// hasGoalWithin reports whether any goal was scored by either side between
// minute 1 and maxMinute (inclusive, elapsed match minutes)
func hasGoalWithin(events []contracts.Event, maxMinute int) bool {
	for _, e := range events {
		if e.IsGoal() && e.Elapsed >= 1 && e.Elapsed <= maxMinute {
			return true
		}
	}
	return false
}

// firstHalfCounts tallies, across a team's matches, in how many the team
// scored at least once and conceded at least once during minutes 1-45.
// A match with both counts toward both tallies. Matches with no event
// data count as no first-half activity; their number is returned so
// callers can annotate.
func firstHalfCounts(ctx context.Context, history contracts.History, matches []contracts.Match, teamID int64) (scored, conceded, missing int, err error) {
	for _, m := range matches {
		events, err := history.MatchEvents(ctx, m.ID)
		if err != nil {
			return 0, 0, 0, err
		}
		if len(events) == 0 {
			missing++
			continue
		}

		opponentID := m.AwayTeamID
		if !m.IsHome(teamID) {
			opponentID = m.HomeTeamID
		}

		var scoredHere, concededHere bool
		for _, e := range events {
			if !e.IsGoal() || e.Elapsed < 1 || e.Elapsed > 45 {
				continue
			}
			switch e.TeamID {
			case teamID:
				scoredHere = true
			case opponentID:
				concededHere = true
			}
		}

		if scoredHere {
			scored++
		}
		if concededHere {
			conceded++
		}
	}

	return scored, conceded, missing, nil
}
