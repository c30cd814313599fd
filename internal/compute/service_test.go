package compute

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/signals"
	"github.com/predictpro/backend/pkg/config"
	"github.com/predictpro/backend/pkg/logger"
)

type fakeFixtureRepo struct {
	fixture *contracts.Fixture
	err     error
}

func (r *fakeFixtureRepo) GetByID(_ context.Context, id int64) (*contracts.Fixture, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.fixture, nil
}
func (r *fakeFixtureRepo) ListByDate(_ context.Context, _ time.Time) ([]*contracts.Fixture, error) {
	return nil, nil
}
func (r *fakeFixtureRepo) Insert(_ context.Context, _ *contracts.Fixture) (int64, error) {
	return 0, nil
}
func (r *fakeFixtureRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakeResultRepo struct {
	saved map[int64][]contracts.SignalResult
}

func (r *fakeResultRepo) SaveAll(_ context.Context, fixtureID int64, results []contracts.SignalResult) error {
	if r.saved == nil {
		r.saved = make(map[int64][]contracts.SignalResult)
	}
	r.saved[fixtureID] = results
	return nil
}
func (r *fakeResultRepo) ListByFixture(_ context.Context, fixtureID int64) ([]contracts.SignalResult, error) {
	return r.saved[fixtureID], nil
}

type emptyHistory struct{}

func (emptyHistory) RecentMatches(_ context.Context, _, _ int64, _ int, _ int) ([]contracts.Match, error) {
	return nil, nil
}
func (emptyHistory) MatchEvents(_ context.Context, _ int64) ([]contracts.Event, error) {
	return nil, nil
}
func (emptyHistory) Standings(_ context.Context, _ int64, _ int) ([]contracts.StandingsEntry, error) {
	return nil, nil
}
func (emptyHistory) Lineups(_ context.Context, _ int64) ([]contracts.Lineup, error) {
	return nil, nil
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "test", LogLevel: "error", LogFormat: "json"})
}

func TestComputeFixtureWithEmptyHistory(t *testing.T) {
	fixture := &contracts.Fixture{
		ID:         7,
		Kickoff:    time.Date(2025, 3, 15, 15, 0, 0, 0, time.UTC),
		HomeTeamID: 10,
		AwayTeamID: 20,
		LeagueID:   39,
	}
	results := &fakeResultRepo{}
	dispatcher := signals.NewDispatcher(signals.DefaultRegistry(), emptyHistory{}, testLogger())
	svc := NewService(&fakeFixtureRepo{fixture: fixture}, results, dispatcher, testLogger())

	err := svc.ComputeFixture(context.Background(), 7)
	require.NoError(t, err)

	// With no history at all, only the always-classifying signals produce
	// rows: form, home/away strength and momentum/pressure. The lineup
	// evaluator runs past its time gate here but finds no lineup.
	saved := results.saved[7]
	ids := make([]contracts.SignalID, 0, len(saved))
	for _, r := range saved {
		ids = append(ids, r.SignalID)
	}
	assert.ElementsMatch(t, []contracts.SignalID{
		contracts.SignalForm,
		contracts.SignalHomeAwayStrength,
		contracts.SignalMomentumPressure,
	}, ids)
}

func TestComputeFixtureLoadFailure(t *testing.T) {
	dispatcher := signals.NewDispatcher(signals.DefaultRegistry(), emptyHistory{}, testLogger())
	svc := NewService(&fakeFixtureRepo{err: errors.New("connection refused")}, &fakeResultRepo{}, dispatcher, testLogger())

	err := svc.ComputeFixture(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixture 7")
}
