package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predictpro/backend/internal/contracts"
)

// SignalResultRepository implements contracts.SignalResultRepository on
// Postgres. One row per (fixture, signal); recomputation overwrites.
type SignalResultRepository struct {
	pool *pgxpool.Pool
}

// NewSignalResultRepository creates a new signal result repository
func NewSignalResultRepository(pool *pgxpool.Pool) *SignalResultRepository {
	return &SignalResultRepository{pool: pool}
}

// SaveAll upserts all results for one fixture in a single transaction.
// Either every row lands or none does.
func (r *SignalResultRepository) SaveAll(ctx context.Context, fixtureID int64, results []contracts.SignalResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO signal_results (fixture_id, signal_id, status, value, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (fixture_id, signal_id)
		DO UPDATE SET
			status = EXCLUDED.status,
			value = EXCLUDED.value,
			note = EXCLUDED.note,
			created_at = EXCLUDED.created_at
	`

	now := time.Now().UTC()
	for _, res := range results {
		_, err := tx.Exec(ctx, query,
			fixtureID, res.SignalID, string(res.Status), res.Value, res.Note, now,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert signal %s for fixture %d: %w",
				res.SignalID, fixtureID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit signal results: %w", err)
	}
	return nil
}

// ListByFixture retrieves all stored results for a fixture in signal order
func (r *SignalResultRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]contracts.SignalResult, error) {
	query := `
		SELECT fixture_id, signal_id, status, value, note, created_at
		FROM signal_results
		WHERE fixture_id = $1
		ORDER BY signal_id
	`

	rows, err := r.pool.Query(ctx, query, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("failed to query signal results for fixture %d: %w", fixtureID, err)
	}
	defer rows.Close()

	var results []contracts.SignalResult
	for rows.Next() {
		var res contracts.SignalResult
		var status string
		err := rows.Scan(&res.FixtureID, &res.SignalID, &status, &res.Value, &res.Note, &res.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan signal result row: %w", err)
		}
		res.Status = contracts.Status(status)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating signal result rows: %w", err)
	}
	return results, nil
}
