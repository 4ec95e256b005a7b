package usecase

import (
	"context"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/playerstats"
)

// NFLDataProvider is the upstream NFL data API. Every method performs a
// network call; failures carry one of the ErrProvider* sentinels or
// ErrDependencyUnavailable when the circuit is open.
type NFLDataProvider interface {
	FetchLeagueHierarchy(ctx context.Context) ([]ExternalTeam, error)
	FetchSeasonSchedule(ctx context.Context, season int, seasonType string) (ExternalSeasonSchedule, error)
	FetchWeekSchedule(ctx context.Context, season int, seasonType string, week int) (ExternalWeek, error)
	FetchGameSummary(ctx context.Context, gameID string) (map[string]any, error)
	FetchGameStatistics(ctx context.Context, gameID string) (ExternalGameStatistics, error)
	FetchTeamRoster(ctx context.Context, teamID string) (ExternalRoster, error)
	FetchPlayerProfile(ctx context.Context, playerID string) (map[string]any, error)
}

type ExternalTeam struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Market     string `json:"market"`
	Alias      string `json:"alias"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
	VenueName  string `json:"venue_name"`
}

type ExternalTeamRef struct {
	ID    string `json:"id"`
	Alias string `json:"alias"`
	Name  string `json:"name"`
}

type ExternalGame struct {
	ID         string          `json:"id"`
	Scheduled  string          `json:"scheduled"`
	Status     string          `json:"status"`
	Home       ExternalTeamRef `json:"home"`
	Away       ExternalTeamRef `json:"away"`
	HomePoints *int            `json:"home_points"`
	AwayPoints *int            `json:"away_points"`
}

type ExternalWeek struct {
	Sequence int            `json:"sequence"`
	Title    string         `json:"title"`
	Games    []ExternalGame `json:"games"`
}

type ExternalSeasonSchedule struct {
	Season int            `json:"season"`
	Type   string         `json:"type"`
	Weeks  []ExternalWeek `json:"weeks"`
}

type ExternalRoster struct {
	TeamID  string           `json:"team_id"`
	Players []ExternalPlayer `json:"players"`
}

type ExternalPlayer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	JerseyNumber string `json:"jersey_number"`
}

type ExternalPlayerStat struct {
	PlayerID string               `json:"player_id"`
	Name     string               `json:"name"`
	Position string               `json:"position"`
	Line     playerstats.StatLine `json:"line"`
}

// ExternalGameStatistics keeps the decoded document next to the parsed
// per-player lines so callers can return it unmodified.
type ExternalGameStatistics struct {
	GameID   string               `json:"game_id"`
	Home     []ExternalPlayerStat `json:"home"`
	Away     []ExternalPlayerStat `json:"away"`
	Document map[string]any       `json:"-"`
}
