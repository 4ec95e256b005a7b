package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/user"
	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	query, args, err := qb.InsertModel("users", userTableModel{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}, "RETURNING id, created_at")
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrAlreadyExists
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	u.ID = row.ID
	u.CreatedAt = row.CreatedAt
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (user.User, bool, error) {
	return r.getOne(ctx, "get user", qb.Eq("id", userID))
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by login", qb.Or(qb.Eq("username", login), qb.Eq("email", login)))
}

func (r *UserRepository) getOne(ctx context.Context, op string, cond qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select(userColumns...).From("users").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return user.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, true, nil
}
