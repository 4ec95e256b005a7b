package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflplayer"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

const nflPlayersTable = "nfl_players_cache"

var nflPlayerColumns = []string{"id", "name", "position", "team_id", "jersey_number", "updated_at"}

type NFLPlayerRepository struct {
	db *sqlx.DB
}

func NewNFLPlayerRepository(db *sqlx.DB) *NFLPlayerRepository {
	return &NFLPlayerRepository{db: db}
}

// Search matches the query anywhere in the player's name or position.
func (r *NFLPlayerRepository) Search(ctx context.Context, query string, limit int) ([]nflplayer.Player, error) {
	if limit <= 0 || limit > nflplayer.DefaultSearchLimit {
		limit = nflplayer.DefaultSearchLimit
	}
	pattern := "%" + strings.TrimSpace(query) + "%"

	sqlQuery, args, err := qb.Select(nflPlayerColumns...).From(nflPlayersTable).
		Where(qb.Or(qb.ILike("name", pattern), qb.ILike("position", pattern))).
		OrderBy("name").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}

	var rows []nflPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return playersFromRows(rows), nil
}

func (r *NFLPlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]nflplayer.Player, error) {
	query, args, err := qb.Select(nflPlayerColumns...).From(nflPlayersTable).
		Where(qb.Eq("team_id", teamID)).
		OrderBy("position", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	var rows []nflPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return playersFromRows(rows), nil
}

func (r *NFLPlayerRepository) UpsertPlayers(ctx context.Context, items []nflplayer.Player) error {
	rows := make([]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, nflPlayerTableModel{
			ID:           item.ID,
			Name:         item.Name,
			Position:     item.Position,
			TeamID:       item.TeamID,
			JerseyNumber: item.JerseyNumber,
			UpdatedAt:    timeOrNow(item.UpdatedAt),
		})
	}
	return execUpsert(ctx, r.db, nflPlayersTable, []string{"id"}, rows)
}

func playersFromRows(rows []nflPlayerTableModel) []nflplayer.Player {
	out := make([]nflplayer.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, nflplayer.Player{
			ID:           row.ID,
			Name:         row.Name,
			Position:     row.Position,
			TeamID:       row.TeamID,
			JerseyNumber: row.JerseyNumber,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return out
}
