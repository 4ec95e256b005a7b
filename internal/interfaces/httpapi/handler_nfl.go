package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

func (h *Handler) ListNFLTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNFLTeams")
	defer span.End()

	teams, err := h.nfl.ListTeams(ctx)
	if err != nil {
		h.fail(ctx, w, "list nfl teams", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(teams, nflTeamToDTO))
}

// GetSeasonSchedule treats a missing or unparsable season as the current
// one. The season type comes from the optional season_type query param.
func (h *Handler) GetSeasonSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSchedule")
	defer span.End()

	season, _ := strconv.Atoi(strings.TrimSpace(r.PathValue("season")))
	seasonType := r.URL.Query().Get("season_type")

	data, err := h.nfl.GetSeasonSchedule(ctx, season, seasonType)
	if err != nil {
		h.fail(ctx, w, "get season schedule", err, "season", season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, data)
}

func (h *Handler) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeekSchedule")
	defer span.End()

	season, seasonType, week, err := weekPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	data, err := h.nfl.GetWeekSchedule(ctx, season, seasonType, week)
	if err != nil {
		h.fail(ctx, w, "get week schedule", err, "season", season, "season_type", seasonType, "week", week)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, data)
}

func (h *Handler) SyncWeekStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncWeekStatistics")
	defer span.End()

	season, seasonType, week, err := weekPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.nfl.SyncWeekStatistics(ctx, season, seasonType, week)
	if err != nil {
		h.fail(ctx, w, "sync week statistics", err, "season", season, "season_type", seasonType, "week", week)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID, err := pathString(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	data, err := h.nfl.GetGameSummary(ctx, gameID)
	if err != nil {
		h.fail(ctx, w, "get game summary", err, "game_id", gameID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, data)
}

func (h *Handler) GetGameStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameStatistics")
	defer span.End()

	gameID, err := pathString(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.nfl.GetGameStatistics(ctx, gameID)
	if err != nil {
		h.fail(ctx, w, "get game statistics", err, "game_id", gameID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameStatisticsToDTO(result))
}

func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRoster")
	defer span.End()

	teamID, err := pathString(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	roster, err := h.nfl.GetTeamRoster(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team roster", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roster)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathString(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	data, err := h.nfl.GetPlayerProfile(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player profile", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, data)
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	players, err := h.nfl.SearchPlayers(ctx, r.PathValue("query"))
	if err != nil {
		h.fail(ctx, w, "search players", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(players, nflPlayerToDTO))
}

func weekPath(r *http.Request) (int, string, int, error) {
	season, err := pathInt(r, "season")
	if err != nil {
		return 0, "", 0, err
	}
	seasonType, err := pathString(r, "seasonType")
	if err != nil {
		return 0, "", 0, err
	}
	week, err := pathInt(r, "week")
	if err != nil {
		return 0, "", 0, err
	}
	return season, seasonType, week, nil
}
