package httpapi

import (
	"net/http"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// loginRequest accepts a username or an email in the username field.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req registerRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auth.Register(ctx, usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(ctx, w, "register", err, "username", req.Username)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, authToDTO(result))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.fail(ctx, w, "login", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, authToDTO(result))
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Me")
	defer span.End()

	userID, err := callerID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.users.GetProfile(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "get current user", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(profile))
}
