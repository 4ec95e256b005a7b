package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

const pickemPicksTable = "pickem_picks"

type PickemPickRepository struct {
	db *sqlx.DB
}

func NewPickemPickRepository(db *sqlx.DB) *PickemPickRepository {
	return &PickemPickRepository{db: db}
}

// Upsert replaces the member's pick for the game.
func (r *PickemPickRepository) Upsert(ctx context.Context, pick pickem.Pick) (pickem.Pick, error) {
	model := pickemPickTableModel{
		GroupID:      pick.GroupID,
		UserID:       pick.UserID,
		GameID:       pick.GameID,
		PickedTeamID: pick.PickedTeamID,
		Season:       pick.Season,
		Week:         pick.Week,
	}
	cols, err := qb.ModelColumns(model)
	if err != nil {
		return pickem.Pick{}, fmt.Errorf("resolve pick columns: %w", err)
	}

	query, args, err := qb.InsertModel(pickemPicksTable, model,
		qb.UpsertSuffix([]string{"group_id", "user_id", "game_id"}, cols)+" RETURNING id, created_at")
	if err != nil {
		return pickem.Pick{}, fmt.Errorf("build upsert pick query: %w", err)
	}

	var row pickemPickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return pickem.Pick{}, fmt.Errorf("upsert pick: %w", err)
	}

	pick.ID = row.ID
	pick.CreatedAt = row.CreatedAt
	return pick, nil
}

// ListByWeek returns the member's picks for one week with whatever the
// schedule cache knows about each game.
func (r *PickemPickRepository) ListByWeek(ctx context.Context, groupID, userID int64, season, week int) ([]pickem.PickWithGame, error) {
	query, args, err := qb.Select(
		"pp.id", "pp.group_id", "pp.user_id", "pp.game_id", "pp.picked_team_id", "pp.season", "pp.week", "pp.created_at",
		"COALESCE(s.scheduled, '') AS scheduled",
		"COALESCE(s.home_team_id, '') AS home_team_id",
		"COALESCE(s.away_team_id, '') AS away_team_id",
		"COALESCE(s.status, '') AS status",
		"s.home_score", "s.away_score",
	).From("pickem_picks pp").
		LeftJoin("nfl_schedule_cache s", "s.id = pp.game_id").
		Where(
			qb.Eq("pp.group_id", groupID),
			qb.Eq("pp.user_id", userID),
			qb.Eq("pp.season", season),
			qb.Eq("pp.week", week),
		).
		OrderBy("s.scheduled", "pp.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks by week query: %w", err)
	}

	var rows []pickemPickWithGameRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks by week: %w", err)
	}

	out := make([]pickem.PickWithGame, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickem.PickWithGame{
			Pick: pickem.Pick{
				ID:           row.ID,
				GroupID:      row.GroupID,
				UserID:       row.UserID,
				GameID:       row.GameID,
				PickedTeamID: row.PickedTeamID,
				Season:       row.Season,
				Week:         row.Week,
				CreatedAt:    row.CreatedAt,
			},
			Scheduled:  row.Scheduled,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			Status:     row.Status,
			HomeScore:  nullToIntPtr(row.HomeScore),
			AwayScore:  nullToIntPtr(row.AwayScore),
		})
	}
	return out, nil
}

// ListFinalized returns the member's season picks on closed games only.
func (r *PickemPickRepository) ListFinalized(ctx context.Context, groupID, userID int64, season int) ([]pickem.FinalizedPick, error) {
	query, args, err := qb.Select(
		"pp.picked_team_id", "s.home_team_id", "s.away_team_id",
		"COALESCE(s.home_score, 0) AS home_score",
		"COALESCE(s.away_score, 0) AS away_score",
	).From("pickem_picks pp").
		Join("nfl_schedule_cache s", "s.id = pp.game_id").
		Where(
			qb.Eq("pp.group_id", groupID),
			qb.Eq("pp.user_id", userID),
			qb.Eq("pp.season", season),
			qb.Eq("s.status", schedule.StatusClosed),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list finalized picks query: %w", err)
	}

	var rows []finalizedPickRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list finalized picks: %w", err)
	}

	out := make([]pickem.FinalizedPick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickem.FinalizedPick(row))
	}
	return out, nil
}
