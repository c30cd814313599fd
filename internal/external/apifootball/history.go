package apifootball

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/predictpro/backend/internal/contracts"
)

// Client implements contracts.History.

// RecentMatches fetches up to `last` matches (home or away) for a team in a
// league season, most recent first. Unplayed matches are included; callers
// filter on Played().
func (c *Client) RecentMatches(ctx context.Context, teamID, leagueID int64, season int, last int) ([]contracts.Match, error) {
	params := url.Values{}
	params.Set("team", strconv.FormatInt(teamID, 10))
	params.Set("league", strconv.FormatInt(leagueID, 10))
	params.Set("season", strconv.Itoa(season))
	params.Set("last", strconv.Itoa(last))

	var env envelope[fixtureItem]
	unavailable, err := c.get(ctx, "/fixtures", params, &env)
	if err != nil {
		return nil, fmt.Errorf("fetch recent matches for team %d: %w", teamID, err)
	}
	if unavailable {
		return nil, nil
	}

	matches := make([]contracts.Match, 0, len(env.Response))
	for _, item := range env.Response {
		matches = append(matches, item.toMatch())
	}

	return matches, nil
}

// MatchEvents fetches all in-match events for a match
func (c *Client) MatchEvents(ctx context.Context, matchID int64) ([]contracts.Event, error) {
	params := url.Values{}
	params.Set("fixture", strconv.FormatInt(matchID, 10))

	var env envelope[eventItem]
	unavailable, err := c.get(ctx, "/fixtures/events", params, &env)
	if err != nil {
		return nil, fmt.Errorf("fetch events for match %d: %w", matchID, err)
	}
	if unavailable {
		return nil, nil
	}

	events := make([]contracts.Event, 0, len(env.Response))
	for _, item := range env.Response {
		events = append(events, item.toEvent())
	}

	return events, nil
}

// Standings fetches the currently active standings group for a league
// season. Competitions with parallel groups (Apertura/Clausura) report the
// group where at least one team has played; if no group has activity yet
// the first group is returned.
func (c *Client) Standings(ctx context.Context, leagueID int64, season int) ([]contracts.StandingsEntry, error) {
	params := url.Values{}
	params.Set("league", strconv.FormatInt(leagueID, 10))
	params.Set("season", strconv.Itoa(season))

	var env envelope[standingsItem]
	unavailable, err := c.get(ctx, "/standings", params, &env)
	if err != nil {
		return nil, fmt.Errorf("fetch standings for league %d: %w", leagueID, err)
	}
	if unavailable || len(env.Response) == 0 {
		return nil, nil
	}

	groups := env.Response[0].League.Standings
	group := pickActiveGroup(groups)

	entries := make([]contracts.StandingsEntry, 0, len(group))
	for _, row := range group {
		entries = append(entries, contracts.StandingsEntry{
			TeamID: row.Team.ID,
			Rank:   row.Rank,
			Played: row.All.Played,
		})
	}

	return entries, nil
}

// pickActiveGroup returns the first group with any matches played,
// falling back to the first group
func pickActiveGroup(groups [][]standingsRow) []standingsRow {
	for _, group := range groups {
		for _, row := range group {
			if row.All.Played > 0 {
				return group
			}
		}
	}

	if len(groups) > 0 {
		return groups[0]
	}
	return nil
}

// Lineups fetches the published starting lineups for a match, one entry
// per team. Empty until the provider publishes them (usually within an
// hour of kickoff).
func (c *Client) Lineups(ctx context.Context, matchID int64) ([]contracts.Lineup, error) {
	params := url.Values{}
	params.Set("fixture", strconv.FormatInt(matchID, 10))

	var env envelope[lineupItem]
	unavailable, err := c.get(ctx, "/fixtures/lineups", params, &env)
	if err != nil {
		return nil, fmt.Errorf("fetch lineups for match %d: %w", matchID, err)
	}
	if unavailable {
		return nil, nil
	}

	lineups := make([]contracts.Lineup, 0, len(env.Response))
	for _, item := range env.Response {
		starters := make([]string, 0, len(item.StartXI))
		for _, s := range item.StartXI {
			starters = append(starters, s.Player.Name)
		}
		lineups = append(lineups, contracts.Lineup{
			TeamID:   item.Team.ID,
			Starters: starters,
		})
	}

	return lineups, nil
}
