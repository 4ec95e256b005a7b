package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

type FantasyLeagueRepository struct {
	db *sqlx.DB
}

func NewFantasyLeagueRepository(db *sqlx.DB) *FantasyLeagueRepository {
	return &FantasyLeagueRepository{db: db}
}

func leagueSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"fl.id", "fl.name", "fl.commissioner_id", "fl.season_year", "fl.max_teams", "fl.draft_date", "fl.created_at",
		"COALESCE(u.username, '') AS commissioner_name",
		"(SELECT COUNT(1) FROM fantasy_teams ft WHERE ft.league_id = fl.id) AS team_count",
	).From("fantasy_leagues fl").
		LeftJoin("users u", "u.id = fl.commissioner_id")
}

func (r *FantasyLeagueRepository) List(ctx context.Context) ([]fantasy.League, error) {
	query, args, err := leagueSelectBuilder().OrderBy("fl.created_at DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues query: %w", err)
	}

	var rows []fantasyLeagueRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]fantasy.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}
	return out, nil
}

func (r *FantasyLeagueRepository) GetByID(ctx context.Context, leagueID int64) (fantasy.League, bool, error) {
	query, args, err := leagueSelectBuilder().Where(qb.Eq("fl.id", leagueID)).ToSQL()
	if err != nil {
		return fantasy.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row fantasyLeagueRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.League{}, false, nil
		}
		return fantasy.League{}, false, fmt.Errorf("get league: %w", err)
	}
	return leagueFromRow(row), true, nil
}

func (r *FantasyLeagueRepository) Create(ctx context.Context, league fantasy.League) (fantasy.League, error) {
	query, args, err := qb.InsertModel("fantasy_leagues", fantasyLeagueTableModel{
		Name:           league.Name,
		CommissionerID: league.CommissionerID,
		SeasonYear:     league.SeasonYear,
		MaxTeams:       league.MaxTeams,
		DraftDate:      timePtrToNull(league.DraftDate),
	}, "RETURNING id, created_at")
	if err != nil {
		return fantasy.League{}, fmt.Errorf("build insert league query: %w", err)
	}

	var row fantasyLeagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return fantasy.League{}, fmt.Errorf("insert league: %w", err)
	}

	league.ID = row.ID
	league.CreatedAt = row.CreatedAt
	return league, nil
}

func leagueFromRow(row fantasyLeagueRow) fantasy.League {
	return fantasy.League{
		ID:               row.ID,
		Name:             row.Name,
		CommissionerID:   row.CommissionerID,
		CommissionerName: row.CommissionerName,
		SeasonYear:       row.SeasonYear,
		MaxTeams:         row.MaxTeams,
		DraftDate:        nullToTimePtr(row.DraftDate),
		TeamCount:        row.TeamCount,
		CreatedAt:        row.CreatedAt,
	}
}
