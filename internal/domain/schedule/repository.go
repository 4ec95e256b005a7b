package schedule

import "context"

type Repository interface {
	ListByWeek(ctx context.Context, season, week int) ([]Game, error)
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	UpsertGames(ctx context.Context, items []Game) error
}
