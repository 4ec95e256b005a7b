package fantasy

import (
	"strings"
	"time"
)

// DefaultMaxTeams applies when a league is created without an explicit cap.
const DefaultMaxTeams = 12

// League is a user-run fantasy league for one season.
type League struct {
	ID               int64
	Name             string
	CommissionerID   int64
	CommissionerName string
	SeasonYear       int
	MaxTeams         int
	DraftDate        *time.Time
	TeamCount        int
	CreatedAt        time.Time
}

func (l League) IsFull() bool {
	return l.MaxTeams > 0 && l.TeamCount >= l.MaxTeams
}

// Team is one user's entry in a league.
type Team struct {
	ID         int64
	LeagueID   int64
	LeagueName string
	UserID     int64
	OwnerName  string
	TeamName   string
	CreatedAt  time.Time
}

// RosterEntry is a player held by a fantasy team.
type RosterEntry struct {
	ID         int64
	TeamID     int64
	PlayerID   string
	PlayerName string
	Position   string
	TeamAbbr   string
	AddedAt    time.Time
}

// Lineup holds the nine weekly slots. Slots are player ids and are not
// checked against the roster.
type Lineup struct {
	TeamID    int64
	Season    int
	Week      int
	QB        string
	RB1       string
	RB2       string
	WR1       string
	WR2       string
	TE        string
	Flex      string
	K         string
	Def       string
	UpdatedAt time.Time
}

// SlotIDs returns the filled slots in lineup order.
func (l Lineup) SlotIDs() []string {
	slots := []string{l.QB, l.RB1, l.RB2, l.WR1, l.WR2, l.TE, l.Flex, l.K, l.Def}
	out := make([]string, 0, len(slots))
	for _, id := range slots {
		if strings.TrimSpace(id) != "" {
			out = append(out, id)
		}
	}
	return out
}

// Standing is one row of a league table.
type Standing struct {
	Team        Team
	TotalPoints float64
}
