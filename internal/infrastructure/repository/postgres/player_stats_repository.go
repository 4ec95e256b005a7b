package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/playerstats"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

const playerStatsTable = "nfl_stats_cache"

// lineupSlotPlayers selects every slot player id a fantasy team has ever
// submitted. IN dedups players who start in several weeks.
const lineupSlotPlayers = "nsc.player_id IN (SELECT UNNEST(ARRAY[" +
	"fl.qb_player_id, fl.rb1_player_id, fl.rb2_player_id, fl.wr1_player_id, fl.wr2_player_id, " +
	"fl.te_player_id, fl.flex_player_id, fl.k_player_id, fl.def_player_id" +
	"]) FROM fantasy_lineups fl WHERE fl.team_id = ?)"

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) UpsertGameStats(ctx context.Context, items []playerstats.GameStat) error {
	rows := make([]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, playerStatsTableModel{
			PlayerID:       item.PlayerID,
			GameID:         item.GameID,
			Season:         item.Season,
			Week:           item.Week,
			PassingYards:   item.Line.PassingYards,
			PassingTDs:     item.Line.PassingTDs,
			PassingInts:    item.Line.PassingInts,
			RushingYards:   item.Line.RushingYards,
			RushingTDs:     item.Line.RushingTDs,
			ReceivingYards: item.Line.ReceivingYards,
			ReceivingTDs:   item.Line.ReceivingTDs,
			Receptions:     item.Line.Receptions,
			Fumbles:        item.Line.FumblesLost,
			FantasyPoints:  item.FantasyPoints,
			UpdatedAt:      timeOrNow(item.UpdatedAt),
		})
	}
	return execUpsert(ctx, r.db, playerStatsTable, []string{"player_id", "game_id"}, rows)
}

func (r *PlayerStatsRepository) SumLineupPoints(ctx context.Context, fantasyTeamID int64, season int) (float64, error) {
	query, args, err := qb.Select("COALESCE(SUM(nsc.fantasy_points), 0) AS total_points").
		From(playerStatsTable+" nsc").
		Where(qb.Eq("nsc.season", season), qb.Expr(lineupSlotPlayers, fantasyTeamID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build sum lineup points query: %w", err)
	}

	var total float64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("sum lineup points: %w", err)
	}
	return total, nil
}
