package nflteam

import (
	"strings"
	"time"
)

// Team represents one NFL franchise as cached from the league hierarchy.
type Team struct {
	ID         string
	Name       string
	Market     string
	Alias      string
	Conference string
	Division   string
	VenueName  string
	UpdatedAt  time.Time
}

// DisplayName is "Market Name" when both parts are known.
func (t Team) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(t.Market) + " " + strings.TrimSpace(t.Name))
}
