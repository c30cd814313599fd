package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestMatch_Played(t *testing.T) {
	played := Match{HomeGoals: intPtr(2), AwayGoals: intPtr(1)}
	scheduled := Match{}
	halfRecorded := Match{HomeGoals: intPtr(1)}

	assert.True(t, played.Played())
	assert.False(t, scheduled.Played())
	assert.False(t, halfRecorded.Played())
}

func TestMatch_Perspective(t *testing.T) {
	m := Match{
		HomeTeamID: 10,
		AwayTeamID: 20,
		HomeGoals:  intPtr(3),
		AwayGoals:  intPtr(1),
	}

	assert.Equal(t, 3, m.GoalsFor(10))
	assert.Equal(t, 1, m.GoalsAgainst(10))
	assert.Equal(t, 2, m.Margin(10))

	assert.Equal(t, 1, m.GoalsFor(20))
	assert.Equal(t, 3, m.GoalsAgainst(20))
	assert.Equal(t, -2, m.Margin(20))

	assert.Equal(t, 4, m.TotalGoals())
}

func TestMatch_BothScored(t *testing.T) {
	assert.True(t, Match{HomeGoals: intPtr(1), AwayGoals: intPtr(2)}.BothScored())
	assert.False(t, Match{HomeGoals: intPtr(0), AwayGoals: intPtr(2)}.BothScored())
	assert.False(t, Match{}.BothScored())
}

func TestMatch_UnplayedIsZero(t *testing.T) {
	m := Match{HomeTeamID: 10, AwayTeamID: 20}

	assert.Equal(t, 0, m.GoalsFor(10))
	assert.Equal(t, 0, m.Margin(20))
	assert.Equal(t, 0, m.TotalGoals())
}

func TestSignalID_String(t *testing.T) {
	assert.Equal(t, "form", SignalForm.String())
	assert.Equal(t, "lineup", SignalLineup.String())
	assert.Equal(t, "unknown", SignalID(99).String())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPositive.Valid())
	assert.True(t, StatusNegative.Valid())
	assert.True(t, StatusNeutral.Valid())
	assert.False(t, Status("X").Valid())
}
