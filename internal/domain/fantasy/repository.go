package fantasy

import "context"

type LeagueRepository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
	Create(ctx context.Context, league League) (League, error)
}

type TeamRepository interface {
	ListByLeague(ctx context.Context, leagueID int64) ([]Team, error)
	ListByUser(ctx context.Context, userID int64) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	GetByLeagueAndUser(ctx context.Context, leagueID, userID int64) (Team, bool, error)
	Create(ctx context.Context, team Team) (Team, error)
}

type RosterRepository interface {
	ListByTeam(ctx context.Context, teamID int64) ([]RosterEntry, error)
	Add(ctx context.Context, entry RosterEntry) (RosterEntry, error)
}

// LineupRepository upserts by (team, season, week).
type LineupRepository interface {
	Upsert(ctx context.Context, lineup Lineup) (Lineup, error)
	Get(ctx context.Context, teamID int64, season, week int) (Lineup, bool, error)
}
