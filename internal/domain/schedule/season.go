package schedule

import "time"

// CurrentSeason maps a wall-clock date to the NFL season it belongs to.
// September through December belong to the season of that year; January
// through August still belong to the previous year's season.
func CurrentSeason(now time.Time) int {
	if now.Month() >= time.September {
		return now.Year()
	}
	return now.Year() - 1
}
