package postgres

import (
	"database/sql"
	"time"
)

type pickemGroupTableModel struct {
	ID         int64     `db:"id" insert:"omit"`
	Name       string    `db:"name"`
	AdminID    int64     `db:"admin_id"`
	SeasonYear int       `db:"season_year"`
	CreatedAt  time.Time `db:"created_at" insert:"omit"`
}

type pickemGroupRow struct {
	pickemGroupTableModel
	AdminName   string `db:"admin_name"`
	MemberCount int    `db:"member_count"`
}

type pickemMemberTableModel struct {
	GroupID int64 `db:"group_id"`
	UserID  int64 `db:"user_id"`
}

type pickemMemberRow struct {
	GroupID  int64     `db:"group_id"`
	UserID   int64     `db:"user_id"`
	Username string    `db:"username"`
	Email    string    `db:"email"`
	JoinedAt time.Time `db:"joined_at"`
}

type pickemPickTableModel struct {
	ID           int64     `db:"id" insert:"omit"`
	GroupID      int64     `db:"group_id"`
	UserID       int64     `db:"user_id"`
	GameID       string    `db:"game_id"`
	PickedTeamID string    `db:"picked_team_id"`
	Season       int       `db:"season"`
	Week         int       `db:"week"`
	CreatedAt    time.Time `db:"created_at" insert:"omit"`
}

type pickemPickWithGameRow struct {
	pickemPickTableModel
	Scheduled  string        `db:"scheduled"`
	HomeTeamID string        `db:"home_team_id"`
	AwayTeamID string        `db:"away_team_id"`
	Status     string        `db:"status"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
}

type finalizedPickRow struct {
	PickedTeamID string `db:"picked_team_id"`
	HomeTeamID   string `db:"home_team_id"`
	AwayTeamID   string `db:"away_team_id"`
	HomeScore    int    `db:"home_score"`
	AwayScore    int    `db:"away_score"`
}
