package httpapi

import (
	"net/http"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
)

type createGroupRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	SeasonYear int    `json:"season_year" validate:"omitempty,min=1920,max=2100"`
}

type makePickRequest struct {
	GameID       string `json:"game_id" validate:"required"`
	PickedTeamID string `json:"picked_team_id" validate:"required"`
	Season       int    `json:"season" validate:"required,gt=0"`
	Week         int    `json:"week" validate:"required,gt=0"`
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroups")
	defer span.End()

	groups, err := h.pickem.ListGroups(ctx)
	if err != nil {
		h.fail(ctx, w, "list groups", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(groups, groupToDTO))
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGroup")
	defer span.End()

	userID, err := callerID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createGroupRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	group, err := h.pickem.CreateGroup(ctx, userID, usecase.CreateGroupInput{
		Name:       req.Name,
		SeasonYear: req.SeasonYear,
	})
	if err != nil {
		h.fail(ctx, w, "create group", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, groupToDTO(group))
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroup")
	defer span.End()

	groupID, err := pathInt64(r, "groupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	group, err := h.pickem.GetGroup(ctx, groupID)
	if err != nil {
		h.fail(ctx, w, "get group", err, "group_id", groupID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groupToDTO(group))
}

func (h *Handler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinGroup")
	defer span.End()

	userID, err := callerID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	groupID, err := pathInt64(r, "groupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.pickem.JoinGroup(ctx, userID, groupID); err != nil {
		h.fail(ctx, w, "join group", err, "group_id", groupID, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, messageDTO{Message: "Joined group successfully"})
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMembers")
	defer span.End()

	groupID, err := pathInt64(r, "groupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	members, err := h.pickem.ListMembers(ctx, groupID)
	if err != nil {
		h.fail(ctx, w, "list members", err, "group_id", groupID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(members, func(m pickem.Member) memberDTO {
		return memberDTO{UserID: m.UserID, Username: m.Username, Email: m.Email, JoinedAt: formatTime(m.JoinedAt)}
	}))
}

func (h *Handler) MakePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MakePick")
	defer span.End()

	userID, err := callerID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	groupID, err := pathInt64(r, "groupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req makePickRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pick, err := h.pickem.MakePick(ctx, userID, groupID, usecase.MakePickInput{
		GameID:       req.GameID,
		PickedTeamID: req.PickedTeamID,
		Season:       req.Season,
		Week:         req.Week,
	})
	if err != nil {
		h.fail(ctx, w, "make pick", err, "group_id", groupID, "user_id", userID, "game_id", req.GameID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pickToDTO(pick))
}

func (h *Handler) WeekPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WeekPicks")
	defer span.End()

	userID, err := callerID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	groupID, err := pathInt64(r, "groupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := pathInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	picks, err := h.pickem.WeekPicks(ctx, userID, groupID, week)
	if err != nil {
		h.fail(ctx, w, "week picks", err, "group_id", groupID, "user_id", userID, "week", week)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(picks, func(p pickem.PickWithGame) pickWithGameDTO {
		return pickWithGameDTO{
			pickDTO:    pickToDTO(p.Pick),
			Scheduled:  p.Scheduled,
			HomeTeamID: p.HomeTeamID,
			AwayTeamID: p.AwayTeamID,
			Status:     p.Status,
			HomeScore:  p.HomeScore,
			AwayScore:  p.AwayScore,
		}
	}))
}

func (h *Handler) GroupLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GroupLeaderboard")
	defer span.End()

	groupID, err := pathInt64(r, "groupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.leaderboard.GroupLeaderboard(ctx, groupID)
	if err != nil {
		h.fail(ctx, w, "group leaderboard", err, "group_id", groupID)
		return
	}

	items := make([]leaderboardEntryDTO, 0, len(entries))
	for i, e := range entries {
		items = append(items, leaderboardEntryDTO{
			Rank:          i + 1,
			UserID:        e.UserID,
			Username:      e.Username,
			Wins:          e.Wins,
			Losses:        e.Losses,
			TotalPicks:    e.TotalPicks,
			WinPercentage: e.WinPercentage,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
