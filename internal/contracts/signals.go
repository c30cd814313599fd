package contracts

import "time"

// SignalID identifies one signal rule. The catalogue is fixed and small;
// ids are stable and stored in the database.
type SignalID int

const (
	SignalForm SignalID = iota + 1
	SignalOver15
	SignalBTTS
	SignalHomeAwayStrength
	SignalLeagueStakes
	SignalBounceBack
	SignalMomentumPressure
	SignalFirstHalfGoalTiming
	SignalFirstHalfOver05
	SignalFastStarters
	SignalHomePressureStart
	SignalLineup
)

// String returns a stable human-readable name for the signal
func (id SignalID) String() string {
	switch id {
	case SignalForm:
		return "form"
	case SignalOver15:
		return "over_1.5"
	case SignalBTTS:
		return "btts"
	case SignalHomeAwayStrength:
		return "home_away_strength"
	case SignalLeagueStakes:
		return "league_stakes"
	case SignalBounceBack:
		return "bounce_back"
	case SignalMomentumPressure:
		return "momentum_pressure"
	case SignalFirstHalfGoalTiming:
		return "first_half_goal_timing"
	case SignalFirstHalfOver05:
		return "first_half_over_0.5"
	case SignalFastStarters:
		return "fast_starters"
	case SignalHomePressureStart:
		return "home_pressure_start"
	case SignalLineup:
		return "lineup"
	default:
		return "unknown"
	}
}

// Status is the three-state classification of a signal
type Status string

const (
	StatusPositive Status = "Y"
	StatusNegative Status = "N"
	StatusNeutral  Status = "-"
)

// Valid reports whether the status is one of the three known states
func (s Status) Valid() bool {
	return s == StatusPositive || s == StatusNegative || s == StatusNeutral
}

// SignalResult is the output of one evaluator for one fixture.
// At most one result exists per (fixture, signal) pair; recomputation
// overwrites the previous row.
type SignalResult struct {
	FixtureID int64     `json:"fixture_id"`
	SignalID  SignalID  `json:"signal_id"`
	Status    Status    `json:"status"`
	Value     float64   `json:"value"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
