package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

type PickemMemberRepository struct {
	db *sqlx.DB
}

func NewPickemMemberRepository(db *sqlx.DB) *PickemMemberRepository {
	return &PickemMemberRepository{db: db}
}

func (r *PickemMemberRepository) Add(ctx context.Context, groupID, userID int64) (bool, error) {
	query, args, err := qb.InsertModel("pickem_group_members", pickemMemberTableModel{
		GroupID: groupID,
		UserID:  userID,
	}, "ON CONFLICT (group_id, user_id) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert member query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert member rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *PickemMemberRepository) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	query, args, err := qb.Select("1").From("pickem_group_members").
		Where(qb.Eq("group_id", groupID), qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build check member query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check member: %w", err)
	}
	return true, nil
}

func (r *PickemMemberRepository) ListByGroup(ctx context.Context, groupID int64) ([]pickem.Member, error) {
	query, args, err := qb.Select("m.group_id", "m.user_id", "u.username", "u.email", "m.joined_at").
		From("pickem_group_members m").
		Join("users u", "u.id = m.user_id").
		Where(qb.Eq("m.group_id", groupID)).
		OrderBy("m.joined_at", "m.user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list members query: %w", err)
	}

	var rows []pickemMemberRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	out := make([]pickem.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickem.Member{
			GroupID:  row.GroupID,
			UserID:   row.UserID,
			Username: row.Username,
			Email:    row.Email,
			JoinedAt: row.JoinedAt,
		})
	}
	return out, nil
}
