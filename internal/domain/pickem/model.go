package pickem

import (
	"math"
	"time"
)

// Group is a pick'em competition for one season.
type Group struct {
	ID          int64
	Name        string
	AdminID     int64
	AdminName   string
	SeasonYear  int
	MemberCount int
	CreatedAt   time.Time
}

type Member struct {
	GroupID  int64
	UserID   int64
	Username string
	Email    string
	JoinedAt time.Time
}

// Pick is unique per (group, user, game); a resubmission replaces it.
type Pick struct {
	ID           int64
	GroupID      int64
	UserID       int64
	GameID       string
	PickedTeamID string
	Season       int
	Week         int
	CreatedAt    time.Time
}

// PickWithGame is a pick joined to its cached game. Game fields are zero
// when the game was never cached.
type PickWithGame struct {
	Pick
	Scheduled  string
	HomeTeamID string
	AwayTeamID string
	Status     string
	HomeScore  *int
	AwayScore  *int
}

// FinalizedPick is a pick on a game whose scores are official.
type FinalizedPick struct {
	PickedTeamID string
	HomeTeamID   string
	AwayTeamID   string
	HomeScore    int
	AwayScore    int
}

// WinnerTeamID returns the home team when it outscored the away team and
// the away team otherwise, so a tie goes to the away team.
func (p FinalizedPick) WinnerTeamID() string {
	if p.HomeScore > p.AwayScore {
		return p.HomeTeamID
	}
	return p.AwayTeamID
}

func (p FinalizedPick) IsCorrect() bool {
	return p.PickedTeamID == p.WinnerTeamID()
}

type LeaderboardEntry struct {
	UserID        int64
	Username      string
	Wins          int
	Losses        int
	TotalPicks    int
	WinPercentage float64
}

// Tally classifies every finalized pick of one member.
func Tally(userID int64, username string, picks []FinalizedPick) LeaderboardEntry {
	entry := LeaderboardEntry{UserID: userID, Username: username, TotalPicks: len(picks)}
	for _, p := range picks {
		if p.IsCorrect() {
			entry.Wins++
			continue
		}
		entry.Losses++
	}
	if entry.TotalPicks > 0 {
		pct := float64(entry.Wins) / float64(entry.TotalPicks) * 100
		entry.WinPercentage = math.Round(pct*100) / 100
	}
	return entry
}
