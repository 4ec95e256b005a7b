package postgres

import "time"

type nflPlayerTableModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Position     string    `db:"position"`
	TeamID       string    `db:"team_id"`
	JerseyNumber string    `db:"jersey_number"`
	UpdatedAt    time.Time `db:"updated_at"`
}
