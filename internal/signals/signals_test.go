package signals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictpro/backend/internal/contracts"
)

const (
	homeID = int64(10)
	awayID = int64(20)
)

var kickoff = time.Date(2025, 3, 15, 15, 0, 0, 0, time.UTC)

func testFixture() *contracts.Fixture {
	return &contracts.Fixture{
		ID:           1,
		Competition:  "Premier League",
		Season:       2024,
		Kickoff:      kickoff,
		HomeTeam:     "Home FC",
		AwayTeam:     "Away FC",
		HomeTeamID:   homeID,
		AwayTeamID:   awayID,
		LeagueID:     39,
		APIFixtureID: 555,
	}
}

// fakeHistory serves canned data per team and match
type fakeHistory struct {
	matches   map[int64][]contracts.Match
	events    map[int64][]contracts.Event
	standings []contracts.StandingsEntry
	lineups   []contracts.Lineup
	err       error
}

func (h *fakeHistory) RecentMatches(_ context.Context, teamID, _ int64, _ int, _ int) ([]contracts.Match, error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.matches[teamID], nil
}

func (h *fakeHistory) MatchEvents(_ context.Context, matchID int64) ([]contracts.Event, error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.events[matchID], nil
}

func (h *fakeHistory) Standings(_ context.Context, _ int64, _ int) ([]contracts.StandingsEntry, error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.standings, nil
}

func (h *fakeHistory) Lineups(_ context.Context, _ int64) ([]contracts.Lineup, error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.lineups, nil
}

func intPtr(v int) *int { return &v }

// playedHome builds a played match with the team at home, daysAgo before kickoff
func playedHome(id int64, daysAgo int, teamID, oppID int64, gf, ga int) contracts.Match {
	return contracts.Match{
		ID:         id,
		Date:       kickoff.AddDate(0, 0, -daysAgo),
		HomeTeamID: teamID,
		AwayTeamID: oppID,
		HomeGoals:  intPtr(gf),
		AwayGoals:  intPtr(ga),
	}
}

// playedAway builds a played match with the team away
func playedAway(id int64, daysAgo int, teamID, oppID int64, gf, ga int) contracts.Match {
	return contracts.Match{
		ID:         id,
		Date:       kickoff.AddDate(0, 0, -daysAgo),
		HomeTeamID: oppID,
		AwayTeamID: teamID,
		HomeGoals:  intPtr(ga),
		AwayGoals:  intPtr(gf),
	}
}

// marginRun builds n played matches for the team with the given per-match
// margins, alternating venue, most recent first
func marginRun(startID int64, teamID, oppID int64, margins ...int) []contracts.Match {
	out := make([]contracts.Match, 0, len(margins))
	for i, margin := range margins {
		gf, ga := 1, 1
		if margin > 0 {
			gf = 1 + margin
		} else if margin < 0 {
			ga = 1 - margin
		}
		id := startID + int64(i)
		if i%2 == 0 {
			out = append(out, playedHome(id, i+1, teamID, oppID, gf, ga))
		} else {
			out = append(out, playedAway(id, i+1, teamID, oppID, gf, ga))
		}
	}
	return out
}

func TestFormSignal(t *testing.T) {
	f := testFixture()

	t.Run("three home wins is positive", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, 1, 2, -1, 1, 0),
			awayID: marginRun(200, awayID, 99, 1, 0, -1, 1, 0),
		}}
		res, err := NewForm().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
		assert.Equal(t, contracts.SignalForm, res.SignalID)
	})

	t.Run("three away losses is positive", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, 0, 0, -1, 1, 0),
			awayID: marginRun(200, awayID, 99, -1, -2, -1, 1, 0),
		}}
		res, err := NewForm().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
	})

	t.Run("two and two is negative", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, 1, 1, -1, 0, 0),
			awayID: marginRun(200, awayID, 99, -1, -1, 1, 0, 0),
		}}
		res, err := NewForm().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNegative, res.Status)
		assert.Equal(t, float64(0), res.Value)
	})

	t.Run("empty history still classifies", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{}}
		res, err := NewForm().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNegative, res.Status)
	})
}

// goalRun builds n played matches for the team with the given total goals,
// split between the two sides
func goalRun(startID int64, teamID, oppID int64, totals ...int) []contracts.Match {
	out := make([]contracts.Match, 0, len(totals))
	for i, total := range totals {
		gf := total / 2
		ga := total - gf
		out = append(out, playedHome(startID+int64(i), i+1, teamID, oppID, gf, ga))
	}
	return out
}

func TestOver15Signal(t *testing.T) {
	f := testFixture()

	cases := []struct {
		name       string
		homeTotals []int
		awayTotals []int
		status     contracts.Status
		value      float64
	}{
		{"eighty percent is positive", []int{2, 3, 2, 4, 0}, []int{2, 2, 3, 5, 1}, contracts.StatusPositive, 0.8},
		{"fifty percent is negative", []int{2, 3, 0, 1, 0}, []int{2, 2, 3, 1, 0}, contracts.StatusNegative, 0.5},
		{"seventy percent is neutral", []int{2, 3, 2, 4, 0}, []int{2, 2, 3, 1, 0}, contracts.StatusNeutral, 0.7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &fakeHistory{matches: map[int64][]contracts.Match{
				homeID: goalRun(100, homeID, 99, tc.homeTotals...),
				awayID: goalRun(200, awayID, 99, tc.awayTotals...),
			}}
			res, err := NewOver15().Evaluate(context.Background(), f, h)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tc.status, res.Status)
			assert.InDelta(t, tc.value, res.Value, 1e-9)
		})
	}

	t.Run("short pool skips", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: goalRun(100, homeID, 99, 2, 3, 2),
			awayID: goalRun(200, awayID, 99, 2, 2, 3, 5, 1),
		}}
		res, err := NewOver15().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestBTTSSignal(t *testing.T) {
	f := testFixture()

	// btts matches have goals on both sides, the rest are shutouts
	build := func(startID int64, teamID int64, btts int) []contracts.Match {
		out := make([]contracts.Match, 0, 5)
		for i := 0; i < 5; i++ {
			if i < btts {
				out = append(out, playedHome(startID+int64(i), i+1, teamID, 99, 1, 1))
			} else {
				out = append(out, playedHome(startID+int64(i), i+1, teamID, 99, 1, 0))
			}
		}
		return out
	}

	cases := []struct {
		name                 string
		homeBTTS, awayBTTS   int
		status               contracts.Status
	}{
		{"seventy percent is positive", 4, 3, contracts.StatusPositive},
		{"forty percent is negative", 2, 2, contracts.StatusNegative},
		{"sixty percent is neutral", 3, 3, contracts.StatusNeutral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &fakeHistory{matches: map[int64][]contracts.Match{
				homeID: build(100, homeID, tc.homeBTTS),
				awayID: build(200, awayID, tc.awayBTTS),
			}}
			res, err := NewBTTS().Evaluate(context.Background(), f, h)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tc.status, res.Status)
		})
	}
}

func TestHomeAwayStrengthSignal(t *testing.T) {
	f := testFixture()

	// venueRun builds played matches for the team all at one venue
	venueRun := func(startID int64, teamID int64, home bool, margins ...int) []contracts.Match {
		out := make([]contracts.Match, 0, len(margins))
		for i, margin := range margins {
			gf, ga := 1, 1
			if margin > 0 {
				gf = 1 + margin
			} else if margin < 0 {
				ga = 1 - margin
			}
			id := startID + int64(i)
			if home {
				out = append(out, playedHome(id, i+1, teamID, 99, gf, ga))
			} else {
				out = append(out, playedAway(id, i+1, teamID, 99, gf, ga))
			}
		}
		return out
	}

	t.Run("strong home weak away is positive", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: venueRun(100, homeID, true, 1, 2, 1, -1, 0),
			awayID: venueRun(200, awayID, false, 1, -1, -1, 0, 0),
		}}
		res, err := NewHomeAwayStrength().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
		assert.Equal(t, float64(2), res.Value)
	})

	t.Run("weak home strong away is negative", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: venueRun(100, homeID, true, 1, -1, -1, 0, 0),
			awayID: venueRun(200, awayID, false, 1, 2, 1, 0, 0),
		}}
		res, err := NewHomeAwayStrength().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNegative, res.Status)
	})

	t.Run("both strong is neutral", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: venueRun(100, homeID, true, 1, 2, 1, 1, 0),
			awayID: venueRun(200, awayID, false, 1, 2, 1, 0, 0),
		}}
		res, err := NewHomeAwayStrength().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNeutral, res.Status)
	})
}

func TestLeagueStakesSignal(t *testing.T) {
	f := testFixture()

	table := func(entries ...contracts.StandingsEntry) []contracts.StandingsEntry {
		// fill a 20-team table around the given entries
		used := map[int]bool{}
		for _, e := range entries {
			used[e.Rank] = true
		}
		out := append([]contracts.StandingsEntry{}, entries...)
		next := int64(1000)
		for rank := 1; rank <= 20; rank++ {
			if used[rank] {
				continue
			}
			out = append(out, contracts.StandingsEntry{TeamID: next, Rank: rank, Played: 20})
			next++
		}
		return out
	}

	t.Run("top four team is positive", func(t *testing.T) {
		h := &fakeHistory{standings: table(
			contracts.StandingsEntry{TeamID: homeID, Rank: 3, Played: 20},
			contracts.StandingsEntry{TeamID: awayID, Rank: 10, Played: 20},
		)}
		res, err := NewLeagueStakes().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
		assert.Equal(t, float64(-7), res.Value)
	})

	t.Run("relegation zone team is positive", func(t *testing.T) {
		h := &fakeHistory{standings: table(
			contracts.StandingsEntry{TeamID: homeID, Rank: 10, Played: 20},
			contracts.StandingsEntry{TeamID: awayID, Rank: 19, Played: 20},
		)}
		res, err := NewLeagueStakes().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
	})

	t.Run("both mid-table is negative", func(t *testing.T) {
		h := &fakeHistory{standings: table(
			contracts.StandingsEntry{TeamID: homeID, Rank: 9, Played: 20},
			contracts.StandingsEntry{TeamID: awayID, Rank: 12, Played: 20},
		)}
		res, err := NewLeagueStakes().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNegative, res.Status)
	})

	t.Run("missing team skips", func(t *testing.T) {
		h := &fakeHistory{standings: table(
			contracts.StandingsEntry{TeamID: homeID, Rank: 9, Played: 20},
		)}
		res, err := NewLeagueStakes().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("early season skips", func(t *testing.T) {
		h := &fakeHistory{standings: table(
			contracts.StandingsEntry{TeamID: homeID, Rank: 3, Played: 4},
			contracts.StandingsEntry{TeamID: awayID, Rank: 10, Played: 4},
		)}
		res, err := NewLeagueStakes().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("empty table skips", func(t *testing.T) {
		h := &fakeHistory{}
		res, err := NewLeagueStakes().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestBounceBackSignal(t *testing.T) {
	f := testFixture()

	cases := []struct {
		name   string
		margin int
		status contracts.Status
	}{
		{"heavy defeat is positive", -2, contracts.StatusPositive},
		{"big win is negative", 3, contracts.StatusNegative},
		{"draw is neutral", 0, contracts.StatusNeutral},
		{"narrow loss is neutral", -1, contracts.StatusNeutral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &fakeHistory{matches: map[int64][]contracts.Match{
				homeID: marginRun(100, homeID, 99, tc.margin, 1, 1),
			}}
			res, err := NewBounceBack().Evaluate(context.Background(), f, h)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tc.status, res.Status)
			assert.Equal(t, float64(tc.margin), res.Value)
		})
	}

	t.Run("no played match skips", func(t *testing.T) {
		unplayed := contracts.Match{ID: 100, Date: kickoff.AddDate(0, 0, 3), HomeTeamID: homeID, AwayTeamID: 99}
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: {unplayed},
		}}
		res, err := NewBounceBack().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestMomentumPressureSignal(t *testing.T) {
	f := testFixture()

	t.Run("home opener is positive", func(t *testing.T) {
		// all played matches away from home
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: {
				playedAway(100, 1, homeID, 99, 1, 0),
				playedAway(101, 8, homeID, 98, 0, 0),
			},
		}}
		res, err := NewMomentumPressure().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
		assert.Equal(t, float64(1), res.Value)
	})

	t.Run("unbeaten run is positive", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, 1, 0, 2, -1, -1),
		}}
		res, err := NewMomentumPressure().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
		assert.Equal(t, float64(3), res.Value)
	})

	t.Run("recent defeat is neutral", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, 1, -1, 2, 0, 0),
		}}
		res, err := NewMomentumPressure().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNeutral, res.Status)
		assert.Equal(t, float64(0), res.Value)
	})

	t.Run("thin history is neutral with note", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, -1, 1),
		}}
		res, err := NewMomentumPressure().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNeutral, res.Status)
		assert.Contains(t, res.Note, "not enough")
	})
}

// goalAt builds a single goal event
func goalAt(teamID int64, minute int) contracts.Event {
	return contracts.Event{Type: contracts.EventTypeGoal, Elapsed: minute, TeamID: teamID}
}

func TestFirstHalfGoalTimingSignal(t *testing.T) {
	f := testFixture()

	h := &fakeHistory{
		matches: map[int64][]contracts.Match{
			homeID: goalRun(100, homeID, 99, 2, 2, 2, 2, 2),
			awayID: goalRun(200, awayID, 99, 2, 2, 2, 2, 2),
		},
		events: map[int64][]contracts.Event{},
	}
	// seven of the ten matches get an early goal
	early := []int64{100, 101, 102, 103, 200, 201, 202}
	for _, id := range early {
		h.events[id] = []contracts.Event{goalAt(99, 15)}
	}
	// two get only a late goal, one has no event data at all
	h.events[104] = []contracts.Event{goalAt(99, 60)}
	h.events[203] = []contracts.Event{goalAt(99, 44)} // still first half but after 30

	res, err := NewFirstHalfGoalTiming().Evaluate(context.Background(), f, h)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, contracts.StatusPositive, res.Status)
	assert.Equal(t, float64(7), res.Value)

	t.Run("short side skips", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: goalRun(100, homeID, 99, 2, 2, 2),
			awayID: goalRun(200, awayID, 99, 2, 2, 2, 2, 2),
		}}
		res, err := NewFirstHalfGoalTiming().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestFirstHalfOver05Signal(t *testing.T) {
	f := testFixture()

	h := &fakeHistory{
		matches: map[int64][]contracts.Match{
			homeID: goalRun(100, homeID, 99, 2, 2, 2, 2, 2),
			awayID: goalRun(200, awayID, 99, 2, 2, 2, 2, 2),
		},
		events: map[int64][]contracts.Event{},
	}
	// only five matches get a first-half goal
	for _, id := range []int64{100, 101, 102, 200, 201} {
		h.events[id] = []contracts.Event{goalAt(99, 40)}
	}

	res, err := NewFirstHalfOver05().Evaluate(context.Background(), f, h)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, contracts.StatusNegative, res.Status)
	assert.Equal(t, float64(5), res.Value)
}

func TestFastStartersSignal(t *testing.T) {
	f := testFixture()

	newHistory := func() *fakeHistory {
		return &fakeHistory{
			matches: map[int64][]contracts.Match{
				homeID: goalRun(100, homeID, 99, 2, 2, 2, 2, 2),
				awayID: goalRun(200, awayID, 99, 2, 2, 2, 2, 2),
			},
			events: map[int64][]contracts.Event{},
		}
	}

	t.Run("home scores early often is positive", func(t *testing.T) {
		h := newHistory()
		for _, id := range []int64{100, 101, 102, 103} {
			h.events[id] = []contracts.Event{goalAt(homeID, 20)}
		}
		// away scores a couple so the quiet-defense guard does not bite
		h.events[200] = []contracts.Event{goalAt(awayID, 30)}
		h.events[201] = []contracts.Event{goalAt(awayID, 12)}
		res, err := NewFastStarters().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
		assert.Equal(t, float64(6), res.Value)
		assert.Contains(t, res.Note, "home scored first-half in 4/5")
	})

	t.Run("quiet first halves is negative", func(t *testing.T) {
		h := newHistory()
		h.events[100] = []contracts.Event{goalAt(homeID, 10)}
		h.events[200] = []contracts.Event{goalAt(99, 10)}
		res, err := NewFastStarters().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNegative, res.Status)
	})

	t.Run("short side skips", func(t *testing.T) {
		h := newHistory()
		h.matches[awayID] = goalRun(200, awayID, 99, 2, 2)
		res, err := NewFastStarters().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestHomePressureStartSignal(t *testing.T) {
	f := testFixture()

	t.Run("two losses is positive", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, -1, -2, 1),
		}}
		res, err := NewHomePressureStart().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
		assert.Equal(t, float64(2), res.Value)
	})

	t.Run("three wins is negative", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, 1, 2, 1),
		}}
		res, err := NewHomePressureStart().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNegative, res.Status)
		assert.Equal(t, float64(3), res.Value)
	})

	t.Run("mixed run is neutral", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, 1, -1, 0),
		}}
		res, err := NewHomePressureStart().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNeutral, res.Status)
		assert.Equal(t, float64(0), res.Value)
	})

	t.Run("fewer than three skips", func(t *testing.T) {
		h := &fakeHistory{matches: map[int64][]contracts.Match{
			homeID: marginRun(100, homeID, 99, -1, -1),
		}}
		res, err := NewHomePressureStart().Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestLineupSignal(t *testing.T) {
	f := testFixture()

	starters := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "Player"
		}
		return out
	}

	t.Run("too early skips without fetching", func(t *testing.T) {
		s := NewLineupWithClock(func() time.Time { return kickoff.Add(-2 * time.Hour) })
		h := &fakeHistory{err: errors.New("should not be called")}
		res, err := s.Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("full eleven is positive", func(t *testing.T) {
		s := NewLineupWithClock(func() time.Time { return kickoff.Add(-10 * time.Minute) })
		h := &fakeHistory{lineups: []contracts.Lineup{
			{TeamID: homeID, Starters: starters(11)},
			{TeamID: awayID, Starters: starters(11)},
		}}
		res, err := s.Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusPositive, res.Status)
		assert.Equal(t, float64(11), res.Value)
	})

	t.Run("short lineup is negative", func(t *testing.T) {
		s := NewLineupWithClock(func() time.Time { return kickoff.Add(-10 * time.Minute) })
		h := &fakeHistory{lineups: []contracts.Lineup{
			{TeamID: homeID, Starters: starters(10)},
		}}
		res, err := s.Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNegative, res.Status)
	})

	t.Run("oversized lineup is neutral", func(t *testing.T) {
		s := NewLineupWithClock(func() time.Time { return kickoff.Add(-10 * time.Minute) })
		h := &fakeHistory{lineups: []contracts.Lineup{
			{TeamID: homeID, Starters: starters(12)},
		}}
		res, err := s.Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, contracts.StatusNeutral, res.Status)
	})

	t.Run("missing home lineup skips", func(t *testing.T) {
		s := NewLineupWithClock(func() time.Time { return kickoff.Add(-10 * time.Minute) })
		h := &fakeHistory{lineups: []contracts.Lineup{
			{TeamID: awayID, Starters: starters(11)},
		}}
		res, err := s.Evaluate(context.Background(), f, h)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}
