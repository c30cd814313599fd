package apifootball

import (
	"time"

	"github.com/predictpro/backend/internal/contracts"
)

// envelope is the common API-Football response wrapper
type envelope[T any] struct {
	Results  int `json:"results"`
	Response []T `json:"response"`
}

// fixtureItem is one entry of the /fixtures response
type fixtureItem struct {
	Fixture struct {
		ID   int64  `json:"id"`
		Date string `json:"date"` // RFC3339 with offset
	} `json:"fixture"`
	Teams struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type teamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// eventItem is one entry of the /fixtures/events response
type eventItem struct {
	Time struct {
		Elapsed *int `json:"elapsed"`
		Extra   *int `json:"extra"`
	} `json:"time"`
	Team   teamRef `json:"team"`
	Player struct {
		Name string `json:"name"`
	} `json:"player"`
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// standingsItem is one entry of the /standings response
type standingsItem struct {
	League struct {
		ID        int64             `json:"id"`
		Standings [][]standingsRow `json:"standings"`
	} `json:"league"`
}

type standingsRow struct {
	Rank int     `json:"rank"`
	Team teamRef `json:"team"`
	All  struct {
		Played int `json:"played"`
	} `json:"all"`
}

// lineupItem is one entry of the /fixtures/lineups response
type lineupItem struct {
	Team    teamRef `json:"team"`
	StartXI []struct {
		Player struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"player"`
	} `json:"startXI"`
}

// toMatch converts a provider fixture into the domain match type
func (f fixtureItem) toMatch() contracts.Match {
	m := contracts.Match{
		ID:         f.Fixture.ID,
		HomeTeamID: f.Teams.Home.ID,
		AwayTeamID: f.Teams.Away.ID,
		HomeGoals:  f.Goals.Home,
		AwayGoals:  f.Goals.Away,
	}

	if ts, err := time.Parse(time.RFC3339, f.Fixture.Date); err == nil {
		m.Date = ts
	}

	return m
}

// toEvent converts a provider event into the domain event type.
// Events without an elapsed minute get 0 and are ignored by the
// minute-window scans downstream.
func (e eventItem) toEvent() contracts.Event {
	elapsed := 0
	if e.Time.Elapsed != nil {
		elapsed = *e.Time.Elapsed
	}

	return contracts.Event{
		Type:    e.Type,
		Elapsed: elapsed,
		TeamID:  e.Team.ID,
		Player:  e.Player.Name,
	}
}
