package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

type PickemGroupRepository struct {
	db *sqlx.DB
}

func NewPickemGroupRepository(db *sqlx.DB) *PickemGroupRepository {
	return &PickemGroupRepository{db: db}
}

func groupSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"pg.id", "pg.name", "pg.admin_id", "pg.season_year", "pg.created_at",
		"COALESCE(u.username, '') AS admin_name",
		"(SELECT COUNT(1) FROM pickem_group_members c WHERE c.group_id = pg.id) AS member_count",
	).From("pickem_groups pg").
		LeftJoin("users u", "u.id = pg.admin_id")
}

func (r *PickemGroupRepository) List(ctx context.Context) ([]pickem.Group, error) {
	query, args, err := groupSelectBuilder().OrderBy("pg.created_at DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list groups query: %w", err)
	}
	return r.selectGroups(ctx, "list groups", query, args)
}

func (r *PickemGroupRepository) ListByUser(ctx context.Context, userID int64) ([]pickem.Group, error) {
	query, args, err := groupSelectBuilder().
		Join("pickem_group_members m", "m.group_id = pg.id").
		Where(qb.Eq("m.user_id", userID)).
		OrderBy("m.joined_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list groups by user query: %w", err)
	}
	return r.selectGroups(ctx, "list groups by user", query, args)
}

func (r *PickemGroupRepository) GetByID(ctx context.Context, groupID int64) (pickem.Group, bool, error) {
	query, args, err := groupSelectBuilder().Where(qb.Eq("pg.id", groupID)).ToSQL()
	if err != nil {
		return pickem.Group{}, false, fmt.Errorf("build get group query: %w", err)
	}

	var row pickemGroupRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pickem.Group{}, false, nil
		}
		return pickem.Group{}, false, fmt.Errorf("get group: %w", err)
	}
	return groupFromRow(row), true, nil
}

func (r *PickemGroupRepository) Create(ctx context.Context, group pickem.Group) (pickem.Group, error) {
	query, args, err := qb.InsertModel("pickem_groups", pickemGroupTableModel{
		Name:       group.Name,
		AdminID:    group.AdminID,
		SeasonYear: group.SeasonYear,
	}, "RETURNING id, created_at")
	if err != nil {
		return pickem.Group{}, fmt.Errorf("build insert group query: %w", err)
	}

	var row pickemGroupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return pickem.Group{}, fmt.Errorf("insert group: %w", err)
	}

	group.ID = row.ID
	group.CreatedAt = row.CreatedAt
	return group, nil
}

func (r *PickemGroupRepository) selectGroups(ctx context.Context, op, query string, args []any) ([]pickem.Group, error) {
	var rows []pickemGroupRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]pickem.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, groupFromRow(row))
	}
	return out, nil
}

func groupFromRow(row pickemGroupRow) pickem.Group {
	return pickem.Group{
		ID:          row.ID,
		Name:        row.Name,
		AdminID:     row.AdminID,
		AdminName:   row.AdminName,
		SeasonYear:  row.SeasonYear,
		MemberCount: row.MemberCount,
		CreatedAt:   row.CreatedAt,
	}
}
