package nflplayer

import "context"

const DefaultSearchLimit = 50

type Repository interface {
	Search(ctx context.Context, query string, limit int) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	UpsertPlayers(ctx context.Context, items []Player) error
}
