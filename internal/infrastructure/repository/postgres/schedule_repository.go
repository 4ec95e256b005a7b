package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

const scheduleTable = "nfl_schedule_cache"

var scheduleColumns = []string{
	"id", "season", "week", "scheduled", "home_team_id", "away_team_id",
	"status", "home_score", "away_score", "updated_at",
}

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) ListByWeek(ctx context.Context, season, week int) ([]schedule.Game, error) {
	query, args, err := qb.Select(scheduleColumns...).From(scheduleTable).
		Where(qb.Eq("season", season), qb.Eq("week", week)).
		OrderBy("scheduled").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list schedule by week query: %w", err)
	}

	var rows []scheduleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list schedule by week: %w", err)
	}

	out := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, gameID string) (schedule.Game, bool, error) {
	query, args, err := qb.Select(scheduleColumns...).From(scheduleTable).
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return schedule.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row scheduleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return schedule.Game{}, false, nil
		}
		return schedule.Game{}, false, fmt.Errorf("get game: %w", err)
	}
	return gameFromRow(row), true, nil
}

func (r *ScheduleRepository) UpsertGames(ctx context.Context, items []schedule.Game) error {
	rows := make([]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, scheduleTableModel{
			ID:         item.ID,
			Season:     item.Season,
			Week:       item.Week,
			Scheduled:  item.Scheduled,
			HomeTeamID: item.HomeTeamID,
			AwayTeamID: item.AwayTeamID,
			Status:     schedule.NormalizeStatus(item.Status),
			HomeScore:  intPtrToNull(item.HomeScore),
			AwayScore:  intPtrToNull(item.AwayScore),
			UpdatedAt:  timeOrNow(item.UpdatedAt),
		})
	}
	return execUpsert(ctx, r.db, scheduleTable, []string{"id"}, rows)
}

func gameFromRow(row scheduleTableModel) schedule.Game {
	return schedule.Game{
		ID:         row.ID,
		Season:     row.Season,
		Week:       row.Week,
		Scheduled:  row.Scheduled,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		Status:     row.Status,
		HomeScore:  nullToIntPtr(row.HomeScore),
		AwayScore:  nullToIntPtr(row.AwayScore),
		UpdatedAt:  row.UpdatedAt,
	}
}
