package contracts

import "time"

// Match is a previously played (or still scheduled) match returned by the
// history provider. Goals stay nil until the match has been played.
type Match struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	HomeGoals  *int      `json:"home_goals"`
	AwayGoals  *int      `json:"away_goals"`
}

// Played reports whether the match has a final score
func (m Match) Played() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}

// IsHome reports whether the given team played at home in this match
func (m Match) IsHome(teamID int64) bool {
	return m.HomeTeamID == teamID
}

// GoalsFor returns the goals scored by the given team.
// Returns 0 for unplayed matches.
func (m Match) GoalsFor(teamID int64) int {
	if !m.Played() {
		return 0
	}
	if m.IsHome(teamID) {
		return *m.HomeGoals
	}
	return *m.AwayGoals
}

// GoalsAgainst returns the goals conceded by the given team.
// Returns 0 for unplayed matches.
func (m Match) GoalsAgainst(teamID int64) int {
	if !m.Played() {
		return 0
	}
	if m.IsHome(teamID) {
		return *m.AwayGoals
	}
	return *m.HomeGoals
}

// Margin returns the goal difference from the given team's perspective.
// Positive means the team won, negative means it lost.
func (m Match) Margin(teamID int64) int {
	return m.GoalsFor(teamID) - m.GoalsAgainst(teamID)
}

// TotalGoals returns the combined goal count of a played match
func (m Match) TotalGoals() int {
	if !m.Played() {
		return 0
	}
	return *m.HomeGoals + *m.AwayGoals
}

// BothScored reports whether both sides scored in a played match
func (m Match) BothScored() bool {
	return m.Played() && *m.HomeGoals > 0 && *m.AwayGoals > 0
}

// EventTypeGoal is the provider's event type for goals
const EventTypeGoal = "Goal"

// Event is a single in-match event. Goal events carry the elapsed minute
// and the scoring team.
type Event struct {
	Type    string `json:"type"`
	Elapsed int    `json:"elapsed"`
	TeamID  int64  `json:"team_id"`
	Player  string `json:"player"`
}

// IsGoal reports whether the event is a goal
func (e Event) IsGoal() bool {
	return e.Type == EventTypeGoal
}

// StandingsEntry is a per-team row in a competition table
type StandingsEntry struct {
	TeamID int64 `json:"team_id"`
	Rank   int   `json:"rank"` // 1 = top
	Played int   `json:"played"`
}

// Lineup is the published starting lineup of one team for one match
type Lineup struct {
	TeamID   int64    `json:"team_id"`
	Starters []string `json:"starters"`
}
