package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

type FantasyTeamRepository struct {
	db *sqlx.DB
}

func NewFantasyTeamRepository(db *sqlx.DB) *FantasyTeamRepository {
	return &FantasyTeamRepository{db: db}
}

func teamSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"ft.id", "ft.league_id", "ft.user_id", "ft.team_name", "ft.created_at",
		"COALESCE(u.username, '') AS owner_name",
		"COALESCE(fl.name, '') AS league_name",
	).From("fantasy_teams ft").
		LeftJoin("users u", "u.id = ft.user_id").
		LeftJoin("fantasy_leagues fl", "fl.id = ft.league_id")
}

func (r *FantasyTeamRepository) ListByLeague(ctx context.Context, leagueID int64) ([]fantasy.Team, error) {
	return r.list(ctx, "list teams by league", qb.Eq("ft.league_id", leagueID))
}

func (r *FantasyTeamRepository) ListByUser(ctx context.Context, userID int64) ([]fantasy.Team, error) {
	return r.list(ctx, "list teams by user", qb.Eq("ft.user_id", userID))
}

func (r *FantasyTeamRepository) GetByID(ctx context.Context, teamID int64) (fantasy.Team, bool, error) {
	return r.get(ctx, "get team", qb.Eq("ft.id", teamID))
}

func (r *FantasyTeamRepository) GetByLeagueAndUser(ctx context.Context, leagueID, userID int64) (fantasy.Team, bool, error) {
	return r.get(ctx, "get team by league and user", qb.Eq("ft.league_id", leagueID), qb.Eq("ft.user_id", userID))
}

func (r *FantasyTeamRepository) Create(ctx context.Context, team fantasy.Team) (fantasy.Team, error) {
	query, args, err := qb.InsertModel("fantasy_teams", fantasyTeamTableModel{
		LeagueID: team.LeagueID,
		UserID:   team.UserID,
		TeamName: team.TeamName,
	}, "RETURNING id, created_at")
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fantasy.Team{}, fantasy.ErrTeamAlreadyExists
		}
		return fantasy.Team{}, fmt.Errorf("insert team: %w", err)
	}

	team.ID = row.ID
	team.CreatedAt = row.CreatedAt
	return team, nil
}

func (r *FantasyTeamRepository) list(ctx context.Context, op string, conds ...qb.Condition) ([]fantasy.Team, error) {
	query, args, err := teamSelectBuilder().Where(conds...).OrderBy("ft.created_at", "ft.id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []fantasyTeamRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]fantasy.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *FantasyTeamRepository) get(ctx context.Context, op string, conds ...qb.Condition) (fantasy.Team, bool, error) {
	query, args, err := teamSelectBuilder().Where(conds...).ToSQL()
	if err != nil {
		return fantasy.Team{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row fantasyTeamRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Team{}, false, nil
		}
		return fantasy.Team{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return teamFromRow(row), true, nil
}

func teamFromRow(row fantasyTeamRow) fantasy.Team {
	return fantasy.Team{
		ID:         row.ID,
		LeagueID:   row.LeagueID,
		LeagueName: row.LeagueName,
		UserID:     row.UserID,
		OwnerName:  row.OwnerName,
		TeamName:   row.TeamName,
		CreatedAt:  row.CreatedAt,
	}
}
