package postgres

import (
	"database/sql"
	"time"
)

type fantasyLeagueTableModel struct {
	ID             int64        `db:"id" insert:"omit"`
	Name           string       `db:"name"`
	CommissionerID int64        `db:"commissioner_id"`
	SeasonYear     int          `db:"season_year"`
	MaxTeams       int          `db:"max_teams"`
	DraftDate      sql.NullTime `db:"draft_date"`
	CreatedAt      time.Time    `db:"created_at" insert:"omit"`
}

type fantasyLeagueRow struct {
	fantasyLeagueTableModel
	CommissionerName string `db:"commissioner_name"`
	TeamCount        int    `db:"team_count"`
}

type fantasyTeamTableModel struct {
	ID        int64     `db:"id" insert:"omit"`
	LeagueID  int64     `db:"league_id"`
	UserID    int64     `db:"user_id"`
	TeamName  string    `db:"team_name"`
	CreatedAt time.Time `db:"created_at" insert:"omit"`
}

type fantasyTeamRow struct {
	fantasyTeamTableModel
	OwnerName  string `db:"owner_name"`
	LeagueName string `db:"league_name"`
}

type fantasyRosterTableModel struct {
	ID         int64     `db:"id" insert:"omit"`
	TeamID     int64     `db:"team_id"`
	PlayerID   string    `db:"player_id"`
	PlayerName string    `db:"player_name"`
	Position   string    `db:"position"`
	TeamAbbr   string    `db:"team_abbr"`
	AddedAt    time.Time `db:"added_at" insert:"omit"`
}

type fantasyLineupTableModel struct {
	TeamID    int64     `db:"team_id"`
	Season    int       `db:"season"`
	Week      int       `db:"week"`
	QB        string    `db:"qb_player_id"`
	RB1       string    `db:"rb1_player_id"`
	RB2       string    `db:"rb2_player_id"`
	WR1       string    `db:"wr1_player_id"`
	WR2       string    `db:"wr2_player_id"`
	TE        string    `db:"te_player_id"`
	Flex      string    `db:"flex_player_id"`
	K         string    `db:"k_player_id"`
	Def       string    `db:"def_player_id"`
	UpdatedAt time.Time `db:"updated_at"`
}
