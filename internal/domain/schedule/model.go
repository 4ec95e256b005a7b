package schedule

import (
	"strings"
	"time"
)

const (
	SeasonTypeRegular    = "REG"
	SeasonTypePreseason  = "PRE"
	SeasonTypePostseason = "PST"
)

const (
	StatusScheduled = "scheduled"
	// StatusClosed is the provider's terminal state: scores are official.
	StatusClosed = "closed"
)

// Game represents one cached schedule entry.
type Game struct {
	ID         string
	Season     int
	Week       int
	Scheduled  string
	HomeTeamID string
	AwayTeamID string
	Status     string
	HomeScore  *int
	AwayScore  *int
	UpdatedAt  time.Time
}

func (g Game) IsFinalized() bool {
	return strings.EqualFold(strings.TrimSpace(g.Status), StatusClosed)
}

// NormalizeSeasonType upper-cases the provider season type and defaults to REG.
func NormalizeSeasonType(v string) string {
	value := strings.ToUpper(strings.TrimSpace(v))
	if value == "" {
		return SeasonTypeRegular
	}
	return value
}

// NormalizeStatus lower-cases the provider status and defaults to scheduled.
func NormalizeStatus(v string) string {
	value := strings.ToLower(strings.TrimSpace(v))
	if value == "" {
		return StatusScheduled
	}
	return value
}
