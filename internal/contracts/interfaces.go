package contracts

import (
	"context"
	"time"
)

// History supplies recent match data for signal evaluation.
// Implementations signal temporary unavailability (rate limits, network
// trouble the provider swallows) by returning an empty slice, never an
// error; evaluators treat empty input as insufficient data.
type History interface {
	// RecentMatches returns up to `last` matches for the team in the given
	// league season, most recent first, home and away appearances mixed.
	// May include unplayed (scheduled) matches.
	RecentMatches(ctx context.Context, teamID, leagueID int64, season int, last int) ([]Match, error)

	// MatchEvents returns all in-match events for a match
	MatchEvents(ctx context.Context, matchID int64) ([]Event, error)

	// Standings returns the currently active standings group for a league
	// season, ordered by rank.
	Standings(ctx context.Context, leagueID int64, season int) ([]StandingsEntry, error)

	// Lineups returns the published starting lineups for a match,
	// one entry per team, empty until the provider publishes them.
	Lineups(ctx context.Context, matchID int64) ([]Lineup, error)
}

// FixtureRepository persists fixtures
type FixtureRepository interface {
	GetByID(ctx context.Context, id int64) (*Fixture, error)
	ListByDate(ctx context.Context, day time.Time) ([]*Fixture, error)
	Insert(ctx context.Context, fixture *Fixture) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// SignalResultRepository persists evaluated signal results
type SignalResultRepository interface {
	// SaveAll upserts all results for one fixture in a single transaction,
	// keyed by (fixture_id, signal_id).
	SaveAll(ctx context.Context, fixtureID int64, results []SignalResult) error

	ListByFixture(ctx context.Context, fixtureID int64) ([]SignalResult, error)
}
