package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

type FantasyRosterRepository struct {
	db *sqlx.DB
}

func NewFantasyRosterRepository(db *sqlx.DB) *FantasyRosterRepository {
	return &FantasyRosterRepository{db: db}
}

func (r *FantasyRosterRepository) ListByTeam(ctx context.Context, teamID int64) ([]fantasy.RosterEntry, error) {
	query, args, err := qb.Select("id", "team_id", "player_id", "player_name", "position", "team_abbr", "added_at").
		From("fantasy_rosters").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("added_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list roster query: %w", err)
	}

	var rows []fantasyRosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	out := make([]fantasy.RosterEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasy.RosterEntry{
			ID:         row.ID,
			TeamID:     row.TeamID,
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Position:   row.Position,
			TeamAbbr:   row.TeamAbbr,
			AddedAt:    row.AddedAt,
		})
	}
	return out, nil
}

func (r *FantasyRosterRepository) Add(ctx context.Context, entry fantasy.RosterEntry) (fantasy.RosterEntry, error) {
	query, args, err := qb.InsertModel("fantasy_rosters", fantasyRosterTableModel{
		TeamID:     entry.TeamID,
		PlayerID:   entry.PlayerID,
		PlayerName: entry.PlayerName,
		Position:   entry.Position,
		TeamAbbr:   entry.TeamAbbr,
	}, "RETURNING id, added_at")
	if err != nil {
		return fantasy.RosterEntry{}, fmt.Errorf("build insert roster entry query: %w", err)
	}

	var row fantasyRosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return fantasy.RosterEntry{}, fmt.Errorf("insert roster entry: %w", err)
	}

	entry.ID = row.ID
	entry.AddedAt = row.AddedAt
	return entry, nil
}
