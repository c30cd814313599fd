package contracts

import "time"

// Fixture is an upcoming or past match scheduled for signal evaluation.
// Fixtures are owned by the persistence layer; evaluators only read them.
type Fixture struct {
	ID          int64     `json:"id"`
	Competition string    `json:"competition"`
	Season      int       `json:"season"`
	Kickoff     time.Time `json:"kickoff"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	HomeTeamID  int64     `json:"home_team_id"`
	AwayTeamID  int64     `json:"away_team_id"`
	LeagueID    int64     `json:"league_id"`

	// APIFixtureID is the provider's id for this fixture, used for
	// lineup lookups against the upcoming match itself.
	APIFixtureID int64 `json:"api_fixture_id"`
}
