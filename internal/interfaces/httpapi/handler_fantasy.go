package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
)

type createLeagueRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	SeasonYear int    `json:"season_year" validate:"omitempty,min=1920,max=2100"`
	MaxTeams   int    `json:"max_teams" validate:"omitempty,min=2,max=32"`
	DraftDate  string `json:"draft_date" validate:"omitempty"`
}

type joinLeagueRequest struct {
	TeamName string `json:"team_name" validate:"required,max=100"`
}

type addRosterPlayerRequest struct {
	PlayerID   string `json:"player_id" validate:"required"`
	PlayerName string `json:"player_name" validate:"required,max=100"`
	Position   string `json:"position" validate:"required,max=10"`
	TeamAbbr   string `json:"team_abbr" validate:"omitempty,max=10"`
}

type setLineupRequest struct {
	Season int    `json:"season" validate:"required,gt=0"`
	Week   int    `json:"week" validate:"required,gt=0"`
	QB     string `json:"qb"`
	RB1    string `json:"rb1"`
	RB2    string `json:"rb2"`
	WR1    string `json:"wr1"`
	WR2    string `json:"wr2"`
	TE     string `json:"te"`
	Flex   string `json:"flex"`
	K      string `json:"k"`
	Def    string `json:"def"`
}

// parseDraftDate accepts RFC 3339 timestamps and plain dates.
func parseDraftDate(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("%w: draft_date must be RFC 3339 or YYYY-MM-DD", usecase.ErrInvalidInput)
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.fantasy.ListLeagues(ctx)
	if err != nil {
		h.fail(ctx, w, "list leagues", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(leagues, leagueToDTO))
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	userID, err := callerID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createLeagueRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	draftDate, err := parseDraftDate(req.DraftDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.fantasy.CreateLeague(ctx, userID, usecase.CreateLeagueInput{
		Name:       req.Name,
		SeasonYear: req.SeasonYear,
		MaxTeams:   req.MaxTeams,
		DraftDate:  draftDate,
	})
	if err != nil {
		h.fail(ctx, w, "create league", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(created))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID, err := pathInt64(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fantasy.GetLeague(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "get league", err, "league_id", leagueID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListLeagueTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueTeams")
	defer span.End()

	leagueID, err := pathInt64(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.fantasy.ListLeagueTeams(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "list league teams", err, "league_id", leagueID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(teams, fantasyTeamToDTO))
}

func (h *Handler) JoinLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinLeague")
	defer span.End()

	userID, err := callerID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID, err := pathInt64(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req joinLeagueRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.fantasy.JoinLeague(ctx, userID, leagueID, req.TeamName)
	if err != nil {
		h.fail(ctx, w, "join league", err, "league_id", leagueID, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fantasyTeamToDTO(team))
}

func (h *Handler) LeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueStandings")
	defer span.End()

	leagueID, err := pathInt64(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	standings, err := h.standings.LeagueStandings(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "league standings", err, "league_id", leagueID)
		return
	}

	items := make([]standingDTO, 0, len(standings))
	for i, s := range standings {
		items = append(items, standingDTO{
			Rank:        i + 1,
			TeamID:      s.Team.ID,
			TeamName:    s.Team.TeamName,
			UserID:      s.Team.UserID,
			OwnerName:   s.Team.OwnerName,
			TotalPoints: s.TotalPoints,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoster")
	defer span.End()

	teamID, err := pathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	roster, err := h.fantasy.ListRoster(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "list roster", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(roster, rosterEntryToDTO))
}

func (h *Handler) AddRosterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddRosterPlayer")
	defer span.End()

	userID, err := callerID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := pathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addRosterPlayerRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.fantasy.AddRosterPlayer(ctx, userID, teamID, usecase.AddRosterPlayerInput{
		PlayerID:   req.PlayerID,
		PlayerName: req.PlayerName,
		Position:   req.Position,
		TeamAbbr:   req.TeamAbbr,
	})
	if err != nil {
		h.fail(ctx, w, "add roster player", err, "team_id", teamID, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterEntryToDTO(entry))
}

func (h *Handler) SetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetLineup")
	defer span.End()

	userID, err := callerID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := pathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setLineupRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.fantasy.SetLineup(ctx, userID, teamID, usecase.SetLineupInput{
		Season: req.Season,
		Week:   req.Week,
		QB:     req.QB,
		RB1:    req.RB1,
		RB2:    req.RB2,
		WR1:    req.WR1,
		WR2:    req.WR2,
		TE:     req.TE,
		Flex:   req.Flex,
		K:      req.K,
		Def:    req.Def,
	})
	if err != nil {
		h.fail(ctx, w, "set lineup", err, "team_id", teamID, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(saved))
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	teamID, err := pathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := pathInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := pathInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.fantasy.GetLineup(ctx, teamID, season, week)
	if err != nil {
		h.fail(ctx, w, "get lineup", err, "team_id", teamID, "season", season, "week", week)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}
