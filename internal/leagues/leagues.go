// Package leagues holds the fixed competition tables the engine depends on:
// which leagues run on a calendar-year season, how many teams each league
// relegates, and the continental-spot threshold. The tables are immutable
// configuration data, not tunable at runtime.
package leagues

// TopFourThreshold is the rank cutoff for continental spots in all leagues
const TopFourThreshold = 4

// DefaultRelegationSpots applies to leagues missing from RelegationCutoffs
const DefaultRelegationSpots = 3

// calendarSeason lists leagues whose season runs January to December.
// Every other league is assumed to span two calendar years (August to May).
var calendarSeason = map[int64]bool{
	71:  true, // Brazil Serie A
	98:  true, // Japan J1 League
	103: true, // Norway Eliteserien
	104: true, // Norway OBOS-ligaen
	113: true, // Sweden Allsvenskan
	114: true, // Sweden Superettan
	129: true, // Argentina Primera Nacional
	131: true, // Argentina Primera B
	188: true, // Australia A-League
	293: true, // South Korea K League 2
}

// relegationCutoffs maps league id to the number of relegated teams
var relegationCutoffs = map[int64]int{
	131: 1, // Argentina Primera B Metropolitana
	129: 2, // Argentina Primera Nacional
	188: 0, // Australia A-League (no relegation)
	218: 1, // Austria Bundesliga
	144: 1, // Belgium Jupiler Pro League
	71:  4, // Brazil Serie A
	172: 2, // Bulgaria Parva Liga
	210: 1, // Croatia HNL
	318: 3, // Cyprus League
	345: 1, // Czech Republic Chance Liga
	40:  3, // England Championship
	41:  4, // England League One
	43:  4, // England National League
	39:  3, // England Premier League
	61:  2, // France Ligue 1
	62:  4, // France Ligue 2
	78:  2, // Germany Bundesliga
	197: 2, // Greece Super League
	271: 2, // Hungary OTP Bank Liga
	323: 0, // India ISL (no relegation)
	382: 2, // Israel Leumit League
	383: 2, // Israel Ligat ha'Al
	135: 3, // Italy Serie A
	89:  2, // Netherlands Eerste Divisie
	88:  1, // Netherlands Eredivisie
	408: 1, // Northern Ireland NIFL Premiership
	94:  2, // Portugal Liga
	308: 2, // Saudi Division 1
	307: 2, // Saudi Professional League
	180: 1, // Scotland Championship
	184: 2, // Scotland League Two
	179: 1, // Scotland Premiership
	286: 2, // Serbia Super Liga
	292: 2, // South Korea K League 1
	293: 2, // South Korea K League 2
	373: 1, // Slovenia Prva Liga
	140: 3, // Spain LaLiga
	141: 4, // Spain LaLiga 2
	207: 1, // Switzerland Super League
	204: 3, // Turkey 1 Lig
	203: 4, // Turkey Super Lig
	301: 2, // UAE League
	333: 2, // Ukraine Premier League
	103: 2, // Norway Eliteserien
	113: 1, // Sweden Allsvenskan
	98:  2, // Japan J1 League
}

// IsCalendarSeason reports whether the league runs a January-December season
func IsCalendarSeason(leagueID int64) bool {
	return calendarSeason[leagueID]
}

// RelegationSpots returns how many bottom-table teams the league relegates
func RelegationSpots(leagueID int64) int {
	if n, ok := relegationCutoffs[leagueID]; ok {
		return n
	}
	return DefaultRelegationSpots
}
