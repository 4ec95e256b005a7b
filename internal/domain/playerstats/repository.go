package playerstats

import "context"

type Repository interface {
	UpsertGameStats(ctx context.Context, items []GameStat) error
	// SumLineupPoints totals fantasy points of every stat row in season whose
	// player occupies any lineup slot of the fantasy team, across all weeks.
	SumLineupPoints(ctx context.Context, fantasyTeamID int64, season int) (float64, error)
}
