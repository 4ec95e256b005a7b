package nflteam

import "context"

type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	UpsertTeams(ctx context.Context, items []Team) error
}
