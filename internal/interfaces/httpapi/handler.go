package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflplayer"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflteam"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/user"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type AuthService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (usecase.AuthResult, error)
	Login(ctx context.Context, login, password string) (usecase.AuthResult, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (user.User, error)
	ListFantasyTeams(ctx context.Context, userID int64) ([]fantasy.Team, error)
	ListPickemGroups(ctx context.Context, userID int64) ([]pickem.Group, error)
}

type NFLService interface {
	ListTeams(ctx context.Context) ([]nflteam.Team, error)
	GetSeasonSchedule(ctx context.Context, season int, seasonType string) (usecase.ExternalSeasonSchedule, error)
	GetWeekSchedule(ctx context.Context, season int, seasonType string, week int) (usecase.WeekSchedule, error)
	SyncWeekStatistics(ctx context.Context, season int, seasonType string, week int) (usecase.StatsSyncResult, error)
	GetGameSummary(ctx context.Context, gameID string) (map[string]any, error)
	GetGameStatistics(ctx context.Context, gameID string) (usecase.GameStatisticsResult, error)
	GetTeamRoster(ctx context.Context, teamID string) (usecase.ExternalRoster, error)
	GetPlayerProfile(ctx context.Context, playerID string) (map[string]any, error)
	SearchPlayers(ctx context.Context, query string) ([]nflplayer.Player, error)
}

type FantasyService interface {
	ListLeagues(ctx context.Context) ([]fantasy.League, error)
	CreateLeague(ctx context.Context, commissionerID int64, input usecase.CreateLeagueInput) (fantasy.League, error)
	GetLeague(ctx context.Context, leagueID int64) (fantasy.League, error)
	ListLeagueTeams(ctx context.Context, leagueID int64) ([]fantasy.Team, error)
	JoinLeague(ctx context.Context, userID, leagueID int64, teamName string) (fantasy.Team, error)
	ListRoster(ctx context.Context, teamID int64) ([]fantasy.RosterEntry, error)
	AddRosterPlayer(ctx context.Context, userID, teamID int64, input usecase.AddRosterPlayerInput) (fantasy.RosterEntry, error)
	SetLineup(ctx context.Context, userID, teamID int64, input usecase.SetLineupInput) (fantasy.Lineup, error)
	GetLineup(ctx context.Context, teamID int64, season, week int) (fantasy.Lineup, error)
}

type StandingsService interface {
	LeagueStandings(ctx context.Context, leagueID int64) ([]fantasy.Standing, error)
}

type PickemService interface {
	ListGroups(ctx context.Context) ([]pickem.Group, error)
	CreateGroup(ctx context.Context, adminID int64, input usecase.CreateGroupInput) (pickem.Group, error)
	GetGroup(ctx context.Context, groupID int64) (pickem.Group, error)
	JoinGroup(ctx context.Context, userID, groupID int64) error
	ListMembers(ctx context.Context, groupID int64) ([]pickem.Member, error)
	MakePick(ctx context.Context, userID, groupID int64, input usecase.MakePickInput) (pickem.Pick, error)
	WeekPicks(ctx context.Context, userID, groupID int64, week int) ([]pickem.PickWithGame, error)
}

type LeaderboardService interface {
	GroupLeaderboard(ctx context.Context, groupID int64) ([]pickem.LeaderboardEntry, error)
}

type HandlerConfig struct {
	Auth        AuthService
	Users       UserService
	NFL         NFLService
	Fantasy     FantasyService
	Standings   StandingsService
	Pickem      PickemService
	Leaderboard LeaderboardService
	Logger      *logging.Logger
}

type Handler struct {
	auth        AuthService
	users       UserService
	nfl         NFLService
	fantasy     FantasyService
	standings   StandingsService
	pickem      PickemService
	leaderboard LeaderboardService
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		auth:        cfg.Auth,
		users:       cfg.Users,
		nfl:         cfg.NFL,
		fantasy:     cfg.Fantasy,
		standings:   cfg.Standings,
		pickem:      cfg.Pickem,
		leaderboard: cfg.Leaderboard,
		logger:      logger.Component("httpapi"),
		validator:   validator.New(),
	}
}

type healthDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, healthDTO{
		Status:  "ok",
		Message: "NFL Fantasy & Pick'em API is running",
	})
}

// decodeBody rejects unknown fields and validates the decoded payload.
func (h *Handler) decodeBody(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(payload); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// fail logs server-side failures at error level and client mistakes at
// debug level, then writes the envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, op string, err error, args ...any) {
	mapped := mapError(ctx, err)
	args = append(args, "error", err, "status", mapped.HTTPStatus)
	switch {
	case mapped.HTTPStatus >= http.StatusInternalServerError:
		h.logger.ErrorContext(ctx, op+" failed", args...)
	case mapped.HTTPStatus == http.StatusTooManyRequests:
		h.logger.WarnContext(ctx, op+" failed", args...)
	default:
		h.logger.DebugContext(ctx, op+" rejected", args...)
	}
	writeError(ctx, w, err)
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func pathString(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.PathValue(name))
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, name)
	}
	return v, nil
}
