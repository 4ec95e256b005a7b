package playerstats

import "time"

// StatLine is the per-player-per-game box score used for fantasy scoring.
type StatLine struct {
	PassingYards   int
	PassingTDs     int
	PassingInts    int
	RushingYards   int
	RushingTDs     int
	ReceivingYards int
	ReceivingTDs   int
	Receptions     int
	FumblesLost    int
}

// GameStat is one cached stat row keyed by (PlayerID, GameID).
// FantasyPoints is computed locally at ingest time.
type GameStat struct {
	PlayerID      string
	GameID        string
	Season        int
	Week          int
	Line          StatLine
	FantasyPoints float64
	UpdatedAt     time.Time
}

// NewGameStat builds a stat row and freezes its fantasy points.
func NewGameStat(playerID, gameID string, season, week int, line StatLine) GameStat {
	return GameStat{
		PlayerID:      playerID,
		GameID:        gameID,
		Season:        season,
		Week:          week,
		Line:          line,
		FantasyPoints: CalculateFantasyPoints(line),
	}
}
