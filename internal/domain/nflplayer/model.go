package nflplayer

import "time"

// Player represents a cached roster entry. TeamID is whichever team's
// roster was fetched last for this player.
type Player struct {
	ID           string
	Name         string
	Position     string
	TeamID       string
	JerseyNumber string
	UpdatedAt    time.Time
}
