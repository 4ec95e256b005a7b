package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflteam"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

const nflTeamsTable = "nfl_teams_cache"

var nflTeamColumns = []string{"id", "name", "market", "alias", "conference", "division", "venue_name", "updated_at"}

type NFLTeamRepository struct {
	db *sqlx.DB
}

func NewNFLTeamRepository(db *sqlx.DB) *NFLTeamRepository {
	return &NFLTeamRepository{db: db}
}

func (r *NFLTeamRepository) List(ctx context.Context) ([]nflteam.Team, error) {
	query, args, err := qb.Select(nflTeamColumns...).From(nflTeamsTable).
		OrderBy("conference", "division", "market").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list nfl teams query: %w", err)
	}

	var rows []nflTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list nfl teams: %w", err)
	}

	out := make([]nflteam.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, nflTeamFromRow(row))
	}
	return out, nil
}

func (r *NFLTeamRepository) GetByID(ctx context.Context, teamID string) (nflteam.Team, bool, error) {
	query, args, err := qb.Select(nflTeamColumns...).From(nflTeamsTable).
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return nflteam.Team{}, false, fmt.Errorf("build get nfl team query: %w", err)
	}

	var row nflTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nflteam.Team{}, false, nil
		}
		return nflteam.Team{}, false, fmt.Errorf("get nfl team: %w", err)
	}
	return nflTeamFromRow(row), true, nil
}

func (r *NFLTeamRepository) UpsertTeams(ctx context.Context, items []nflteam.Team) error {
	rows := make([]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, nflTeamTableModel{
			ID:         item.ID,
			Name:       item.Name,
			Market:     item.Market,
			Alias:      item.Alias,
			Conference: item.Conference,
			Division:   item.Division,
			VenueName:  item.VenueName,
			UpdatedAt:  timeOrNow(item.UpdatedAt),
		})
	}
	return execUpsert(ctx, r.db, nflTeamsTable, []string{"id"}, rows)
}

func nflTeamFromRow(row nflTeamTableModel) nflteam.Team {
	return nflteam.Team{
		ID:         row.ID,
		Name:       row.Name,
		Market:     row.Market,
		Alias:      row.Alias,
		Conference: row.Conference,
		Division:   row.Division,
		VenueName:  row.VenueName,
		UpdatedAt:  row.UpdatedAt,
	}
}
