package postgres

import (
	"database/sql"
	"time"
)

type scheduleTableModel struct {
	ID         string        `db:"id"`
	Season     int           `db:"season"`
	Week       int           `db:"week"`
	Scheduled  string        `db:"scheduled"`
	HomeTeamID string        `db:"home_team_id"`
	AwayTeamID string        `db:"away_team_id"`
	Status     string        `db:"status"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	UpdatedAt  time.Time     `db:"updated_at"`
}
