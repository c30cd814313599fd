// Package season infers the provider's season label for a fixture.
package season

import (
	"time"

	"github.com/predictpro/backend/internal/leagues"
)

// splitMonth is the month a cross-year season starts (August)
const splitMonth = time.August

// Resolve returns the season label history queries must use for a fixture.
//
// Calendar-year leagues use the kickoff year directly. All other leagues
// run August-May, so a kickoff before August still belongs to the season
// that started the previous year. Total: always returns a year.
func Resolve(leagueID int64, kickoff time.Time) int {
	if leagues.IsCalendarSeason(leagueID) {
		return kickoff.Year()
	}

	if kickoff.Month() < splitMonth {
		return kickoff.Year() - 1
	}
	return kickoff.Year()
}
