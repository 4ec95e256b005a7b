package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

const fantasyLineupsTable = "fantasy_lineups"

var lineupColumns = []string{
	"team_id", "season", "week",
	"qb_player_id", "rb1_player_id", "rb2_player_id", "wr1_player_id", "wr2_player_id",
	"te_player_id", "flex_player_id", "k_player_id", "def_player_id", "updated_at",
}

type FantasyLineupRepository struct {
	db *sqlx.DB
}

func NewFantasyLineupRepository(db *sqlx.DB) *FantasyLineupRepository {
	return &FantasyLineupRepository{db: db}
}

// Upsert replaces every slot of the (team, season, week) lineup.
func (r *FantasyLineupRepository) Upsert(ctx context.Context, lineup fantasy.Lineup) (fantasy.Lineup, error) {
	lineup.UpdatedAt = timeOrNow(lineup.UpdatedAt)
	row := fantasyLineupTableModel{
		TeamID:    lineup.TeamID,
		Season:    lineup.Season,
		Week:      lineup.Week,
		QB:        lineup.QB,
		RB1:       lineup.RB1,
		RB2:       lineup.RB2,
		WR1:       lineup.WR1,
		WR2:       lineup.WR2,
		TE:        lineup.TE,
		Flex:      lineup.Flex,
		K:         lineup.K,
		Def:       lineup.Def,
		UpdatedAt: lineup.UpdatedAt,
	}
	if err := execUpsert(ctx, r.db, fantasyLineupsTable, []string{"team_id", "season", "week"}, []any{row}); err != nil {
		return fantasy.Lineup{}, err
	}
	return lineup, nil
}

func (r *FantasyLineupRepository) Get(ctx context.Context, teamID int64, season, week int) (fantasy.Lineup, bool, error) {
	query, args, err := qb.Select(lineupColumns...).From(fantasyLineupsTable).
		Where(qb.Eq("team_id", teamID), qb.Eq("season", season), qb.Eq("week", week)).
		ToSQL()
	if err != nil {
		return fantasy.Lineup{}, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var row fantasyLineupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Lineup{}, false, nil
		}
		return fantasy.Lineup{}, false, fmt.Errorf("get lineup: %w", err)
	}

	return fantasy.Lineup{
		TeamID:    row.TeamID,
		Season:    row.Season,
		Week:      row.Week,
		QB:        row.QB,
		RB1:       row.RB1,
		RB2:       row.RB2,
		WR1:       row.WR1,
		WR2:       row.WR2,
		TE:        row.TE,
		Flex:      row.Flex,
		K:         row.K,
		Def:       row.Def,
		UpdatedAt: row.UpdatedAt,
	}, true, nil
}
