package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predictpro/backend/internal/contracts"
)

// ErrFixtureNotFound is returned when a fixture id has no row
var ErrFixtureNotFound = errors.New("fixture not found")

// FixtureRepository implements contracts.FixtureRepository on Postgres
type FixtureRepository struct {
	pool *pgxpool.Pool
}

// NewFixtureRepository creates a new fixture repository
func NewFixtureRepository(pool *pgxpool.Pool) *FixtureRepository {
	return &FixtureRepository{pool: pool}
}

const fixtureColumns = `
	id, api_fixture_id, competition, season, kickoff,
	home_team, away_team, home_team_id, away_team_id, league_id
`

func scanFixture(row pgx.Row) (*contracts.Fixture, error) {
	var f contracts.Fixture
	err := row.Scan(
		&f.ID, &f.APIFixtureID, &f.Competition, &f.Season, &f.Kickoff,
		&f.HomeTeam, &f.AwayTeam, &f.HomeTeamID, &f.AwayTeamID, &f.LeagueID,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByID retrieves one fixture
func (r *FixtureRepository) GetByID(ctx context.Context, id int64) (*contracts.Fixture, error) {
	query := `SELECT ` + fixtureColumns + ` FROM fixtures WHERE id = $1`

	f, err := scanFixture(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFixtureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query fixture %d: %w", id, err)
	}
	return f, nil
}

// ListByDate retrieves all fixtures kicking off on the given UTC day
func (r *FixtureRepository) ListByDate(ctx context.Context, day time.Time) ([]*contracts.Fixture, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	query := `SELECT ` + fixtureColumns + `
		FROM fixtures
		WHERE kickoff >= $1 AND kickoff < $2
		ORDER BY kickoff, id`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixtures for %s: %w", start.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var fixtures []*contracts.Fixture
	for rows.Next() {
		f, err := scanFixture(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixture row: %w", err)
		}
		fixtures = append(fixtures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixture rows: %w", err)
	}
	return fixtures, nil
}

// Insert stores a fixture and returns its id
func (r *FixtureRepository) Insert(ctx context.Context, f *contracts.Fixture) (int64, error) {
	query := `
		INSERT INTO fixtures (
			api_fixture_id, competition, season, kickoff,
			home_team, away_team, home_team_id, away_team_id, league_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		f.APIFixtureID, f.Competition, f.Season, f.Kickoff,
		f.HomeTeam, f.AwayTeam, f.HomeTeamID, f.AwayTeamID, f.LeagueID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert fixture: %w", err)
	}
	return id, nil
}

// Delete removes a fixture; its signal results go with it via the cascade
func (r *FixtureRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM fixtures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fixture %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFixtureNotFound
	}
	return nil
}
