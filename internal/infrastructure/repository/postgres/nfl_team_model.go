package postgres

import "time"

type nflTeamTableModel struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Market     string    `db:"market"`
	Alias      string    `db:"alias"`
	Conference string    `db:"conference"`
	Division   string    `db:"division"`
	VenueName  string    `db:"venue_name"`
	UpdatedAt  time.Time `db:"updated_at"`
}
