package apifootball

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictpro/backend/pkg/config"
	"github.com/predictpro/backend/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "error",
		LogFormat: "json",
		APIFootball: config.APIFootballConfig{
			APIKey:            "test-key",
			BaseURL:           srv.URL,
			RequestsPerSecond: 1000,
		},
	}

	client := NewClient(cfg, logger.New(cfg))
	client.initialDelay = 0

	return client, srv
}

func TestRecentMatches(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-apisports-key"))
		assert.Equal(t, "42", r.URL.Query().Get("team"))
		assert.Equal(t, "39", r.URL.Query().Get("league"))
		assert.Equal(t, "2025", r.URL.Query().Get("season"))
		assert.Equal(t, "15", r.URL.Query().Get("last"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": 2,
			"response": [
				{
					"fixture": {"id": 1001, "date": "2025-11-02T15:00:00+00:00"},
					"teams": {"home": {"id": 42, "name": "Arsenal"}, "away": {"id": 50, "name": "City"}},
					"goals": {"home": 2, "away": 1}
				},
				{
					"fixture": {"id": 1002, "date": "2025-11-09T15:00:00+00:00"},
					"teams": {"home": {"id": 66, "name": "Villa"}, "away": {"id": 42, "name": "Arsenal"}},
					"goals": {"home": null, "away": null}
				}
			]
		}`))
	})

	matches, err := client.RecentMatches(context.Background(), 42, 39, 2025, 15)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, int64(1001), matches[0].ID)
	assert.True(t, matches[0].Played())
	assert.Equal(t, 2, matches[0].GoalsFor(42))
	assert.Equal(t, 2025, matches[0].Date.Year())

	assert.False(t, matches[1].Played())
	assert.False(t, matches[1].IsHome(42))
}

func TestRecentMatches_RateLimitedReturnsEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	matches, err := client.RecentMatches(context.Background(), 42, 39, 2025, 15)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchEvents(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures/events", r.URL.Path)
		assert.Equal(t, "1001", r.URL.Query().Get("fixture"))

		w.Write([]byte(`{
			"results": 2,
			"response": [
				{"time": {"elapsed": 23}, "team": {"id": 42}, "player": {"name": "Saka"}, "type": "Goal", "detail": "Normal Goal"},
				{"time": {"elapsed": 55}, "team": {"id": 50}, "player": {"name": "Haaland"}, "type": "Card", "detail": "Yellow Card"}
			]
		}`))
	})

	events, err := client.MatchEvents(context.Background(), 1001)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.True(t, events[0].IsGoal())
	assert.Equal(t, 23, events[0].Elapsed)
	assert.Equal(t, int64(42), events[0].TeamID)
	assert.False(t, events[1].IsGoal())
}

func TestStandings_PicksActiveGroup(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/standings", r.URL.Path)

		// Two parallel groups; only the second has matches played
		w.Write([]byte(`{
			"results": 1,
			"response": [{
				"league": {
					"id": 129,
					"standings": [
						[
							{"rank": 1, "team": {"id": 1}, "all": {"played": 0}},
							{"rank": 2, "team": {"id": 2}, "all": {"played": 0}}
						],
						[
							{"rank": 1, "team": {"id": 3}, "all": {"played": 7}},
							{"rank": 2, "team": {"id": 4}, "all": {"played": 7}}
						]
					]
				}
			}]
		}`))
	})

	entries, err := client.Standings(context.Background(), 129, 2025)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(3), entries[0].TeamID)
	assert.Equal(t, 7, entries[0].Played)
}

func TestStandings_FallsBackToFirstGroup(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"results": 1,
			"response": [{
				"league": {
					"id": 129,
					"standings": [
						[{"rank": 1, "team": {"id": 1}, "all": {"played": 0}}],
						[{"rank": 1, "team": {"id": 3}, "all": {"played": 0}}]
					]
				}
			}]
		}`))
	})

	entries, err := client.Standings(context.Background(), 129, 2025)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].TeamID)
}

func TestLineups(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures/lineups", r.URL.Path)

		w.Write([]byte(`{
			"results": 2,
			"response": [
				{"team": {"id": 42}, "startXI": [
					{"player": {"id": 1, "name": "Raya"}},
					{"player": {"id": 2, "name": "White"}}
				]},
				{"team": {"id": 50}, "startXI": []}
			]
		}`))
	})

	lineups, err := client.Lineups(context.Background(), 2001)
	require.NoError(t, err)
	require.Len(t, lineups, 2)

	assert.Equal(t, int64(42), lineups[0].TeamID)
	assert.Equal(t, []string{"Raya", "White"}, lineups[0].Starters)
	assert.Empty(t, lineups[1].Starters)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"results": 0, "response": []}`))
	})

	matches, err := client.RecentMatches(context.Background(), 42, 39, 2025, 15)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Equal(t, 3, attempts)
}

func TestClient_NonOKStatusIsError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.RecentMatches(context.Background(), 42, 39, 2025, 15)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
