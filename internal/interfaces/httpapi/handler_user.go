package httpapi

import "net/http"

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.users.GetProfile(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "get user", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(profile))
}

func (h *Handler) ListUserFantasyTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUserFantasyTeams")
	defer span.End()

	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.users.ListFantasyTeams(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "list user fantasy teams", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(teams, fantasyTeamToDTO))
}

func (h *Handler) ListUserPickemGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUserPickemGroups")
	defer span.End()

	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.users.ListPickemGroups(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "list user pickem groups", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(groups, groupToDTO))
}
