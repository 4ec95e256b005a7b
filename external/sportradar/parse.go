package sportradar

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/playerstats"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
)

// parseHierarchy flattens conferences[].divisions[].teams[].
func parseHierarchy(doc map[string]any) []usecase.ExternalTeam {
	out := make([]usecase.ExternalTeam, 0, 32)
	for _, conference := range getMaps(doc, "conferences") {
		conferenceName := getString(conference, "name")
		for _, division := range getMaps(conference, "divisions") {
			divisionName := getString(division, "name")
			for _, team := range getMaps(division, "teams") {
				id := getString(team, "id")
				if id == "" {
					continue
				}
				out = append(out, usecase.ExternalTeam{
					ID:         id,
					Name:       getString(team, "name"),
					Market:     getString(team, "market"),
					Alias:      getString(team, "alias"),
					Conference: conferenceName,
					Division:   divisionName,
					VenueName:  getString(getMap(team, "venue"), "name"),
				})
			}
		}
	}
	return out
}

func parseSeasonSchedule(doc map[string]any, season int, seasonType string) usecase.ExternalSeasonSchedule {
	out := usecase.ExternalSeasonSchedule{
		Season: season,
		Type:   firstNonEmpty(getString(doc, "type"), seasonType),
	}
	if year := getInt(doc, "year"); year > 0 {
		out.Season = year
	}
	for _, week := range getMaps(doc, "weeks") {
		out.Weeks = append(out.Weeks, parseWeek(week))
	}
	return out
}

// parseWeekSchedule accepts both the nested {"week": {...}} shape and a
// document that carries games at the top level.
func parseWeekSchedule(doc map[string]any, requestedWeek int) usecase.ExternalWeek {
	source := doc
	if nested := getMap(doc, "week"); nested != nil {
		source = nested
	}
	week := parseWeek(source)
	if week.Sequence <= 0 {
		week.Sequence = requestedWeek
	}
	return week
}

func parseWeek(src map[string]any) usecase.ExternalWeek {
	week := usecase.ExternalWeek{
		Sequence: getInt(src, "sequence"),
		Title:    getText(src, "title"),
	}
	games := getMaps(src, "games")
	week.Games = make([]usecase.ExternalGame, 0, len(games))
	for _, game := range games {
		id := getString(game, "id")
		if id == "" {
			continue
		}
		scoring := getMap(game, "scoring")
		week.Games = append(week.Games, usecase.ExternalGame{
			ID:         id,
			Scheduled:  getString(game, "scheduled"),
			Status:     schedule.NormalizeStatus(getString(game, "status")),
			Home:       parseTeamRef(getMap(game, "home")),
			Away:       parseTeamRef(getMap(game, "away")),
			HomePoints: getIntPtr(scoring, "home_points"),
			AwayPoints: getIntPtr(scoring, "away_points"),
		})
	}
	return week
}

func parseTeamRef(src map[string]any) usecase.ExternalTeamRef {
	return usecase.ExternalTeamRef{
		ID:    getString(src, "id"),
		Alias: getString(src, "alias"),
		Name:  getString(src, "name"),
	}
}

func parseRoster(doc map[string]any, requestedTeamID string) usecase.ExternalRoster {
	out := usecase.ExternalRoster{TeamID: firstNonEmpty(getString(doc, "id"), requestedTeamID)}
	for _, player := range getMaps(doc, "players") {
		id := getString(player, "id")
		if id == "" {
			continue
		}
		name := getString(player, "name")
		if name == "" {
			name = strings.TrimSpace(getString(player, "first_name") + " " + getString(player, "last_name"))
		}
		out.Players = append(out.Players, usecase.ExternalPlayer{
			ID:           id,
			Name:         name,
			Position:     getString(player, "position"),
			JerseyNumber: firstNonEmpty(getText(player, "jersey"), getText(player, "jersey_number")),
		})
	}
	return out
}

func parseGameStatistics(doc map[string]any, requestedGameID string) usecase.ExternalGameStatistics {
	statistics := getMap(doc, "statistics")
	return usecase.ExternalGameStatistics{
		GameID:   firstNonEmpty(getString(doc, "id"), requestedGameID),
		Home:     parsePlayerStats(getMap(statistics, "home")),
		Away:     parsePlayerStats(getMap(statistics, "away")),
		Document: doc,
	}
}

func parsePlayerStats(side map[string]any) []usecase.ExternalPlayerStat {
	players := getMaps(side, "players")
	out := make([]usecase.ExternalPlayerStat, 0, len(players))
	for _, player := range players {
		id := getString(player, "id")
		if id == "" {
			continue
		}
		passing := getMap(player, "passing")
		rushing := getMap(player, "rushing")
		receiving := getMap(player, "receiving")
		out = append(out, usecase.ExternalPlayerStat{
			PlayerID: id,
			Name:     getString(player, "name"),
			Position: getString(player, "position"),
			Line: playerstats.StatLine{
				PassingYards:   getInt(passing, "yards"),
				PassingTDs:     getInt(passing, "touchdowns"),
				PassingInts:    getInt(passing, "interceptions"),
				RushingYards:   getInt(rushing, "yards"),
				RushingTDs:     getInt(rushing, "touchdowns"),
				ReceivingYards: getInt(receiving, "yards"),
				ReceivingTDs:   getInt(receiving, "touchdowns"),
				Receptions:     getInt(receiving, "receptions"),
				FumblesLost:    getInt(getMap(player, "fumbles"), "lost"),
			},
		})
	}
	return out
}

func getMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	value, _ := src[key].(map[string]any)
	return value
}

func getMaps(src map[string]any, key string) []map[string]any {
	if src == nil {
		return nil
	}
	items, ok := src[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	value, ok := src[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// getText reads a field that the provider sends either as a string or a number.
func getText(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	switch typed := src[key].(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

func getInt(src map[string]any, key string) int {
	value, _ := lookupInt(src, key)
	return value
}

func getIntPtr(src map[string]any, key string) *int {
	value, ok := lookupInt(src, key)
	if !ok {
		return nil
	}
	return &value
}

func lookupInt(src map[string]any, key string) (int, bool) {
	if src == nil {
		return 0, false
	}
	switch typed := src[key].(type) {
	case float64:
		return int(typed), true
	case float32:
		return int(typed), true
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case string:
		v, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
