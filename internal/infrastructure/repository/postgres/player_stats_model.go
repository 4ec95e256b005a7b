package postgres

import "time"

type playerStatsTableModel struct {
	PlayerID       string    `db:"player_id"`
	GameID         string    `db:"game_id"`
	Season         int       `db:"season"`
	Week           int       `db:"week"`
	PassingYards   int       `db:"passing_yards"`
	PassingTDs     int       `db:"passing_tds"`
	PassingInts    int       `db:"passing_ints"`
	RushingYards   int       `db:"rushing_yards"`
	RushingTDs     int       `db:"rushing_tds"`
	ReceivingYards int       `db:"receiving_yards"`
	ReceivingTDs   int       `db:"receiving_tds"`
	Receptions     int       `db:"receptions"`
	Fumbles        int       `db:"fumbles"`
	FantasyPoints  float64   `db:"fantasy_points"`
	UpdatedAt      time.Time `db:"updated_at"`
}
