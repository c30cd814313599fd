package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 20, 0, 0, 0, time.UTC)
}

func TestResolve_SplitYearLeagues(t *testing.T) {
	// Premier League (39) runs August-May
	tests := []struct {
		name    string
		kickoff time.Time
		want    int
	}{
		{"spring belongs to previous season", date(2025, time.March, 15), 2024},
		{"july still previous season", date(2025, time.July, 31), 2024},
		{"august starts the new season", date(2025, time.August, 1), 2025},
		{"december is current season", date(2025, time.December, 26), 2025},
		{"january rolls back", date(2026, time.January, 2), 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(39, tt.kickoff))
		})
	}
}

func TestResolve_CalendarYearLeagues(t *testing.T) {
	// Brazil Serie A (71) and Norway Eliteserien (103) run Jan-Dec
	for _, leagueID := range []int64{71, 98, 103, 113, 188, 293} {
		assert.Equal(t, 2025, Resolve(leagueID, date(2025, time.March, 15)))
		assert.Equal(t, 2025, Resolve(leagueID, date(2025, time.November, 30)))
	}
}

func TestResolve_Total(t *testing.T) {
	// Unknown leagues still resolve (split-year convention)
	assert.Equal(t, 2024, Resolve(999999, date(2025, time.February, 1)))
	assert.Equal(t, 2025, Resolve(999999, date(2025, time.September, 1)))

	// Resolve is idempotent for a given input
	k := date(2025, time.May, 10)
	assert.Equal(t, Resolve(39, k), Resolve(39, k))
}
