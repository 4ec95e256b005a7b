package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/user"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type fakeVerifier struct{}

func (fakeVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if token != testToken {
		return user.Principal{}, fmt.Errorf("%w: invalid or expired token", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: 5, Username: "ana"}, nil
}

// Fakes embed the interface so unused methods panic when called.
type fakeFantasy struct {
	FantasyService
	createdBy int64
	created   usecase.CreateLeagueInput
}

func (f *fakeFantasy) CreateLeague(_ context.Context, commissionerID int64, input usecase.CreateLeagueInput) (fantasy.League, error) {
	f.createdBy = commissionerID
	f.created = input
	return fantasy.League{ID: 1, Name: input.Name, CommissionerID: commissionerID, SeasonYear: 2024, MaxTeams: 12}, nil
}

func (f *fakeFantasy) JoinLeague(context.Context, int64, int64, string) (fantasy.Team, error) {
	return fantasy.Team{}, fmt.Errorf("%w: you already have a team in this league", usecase.ErrConflict)
}

type fakeNFL struct {
	NFLService
	season, week int
	seasonType   string
}

func (f *fakeNFL) GetWeekSchedule(_ context.Context, season int, seasonType string, week int) (usecase.WeekSchedule, error) {
	f.season, f.seasonType, f.week = season, seasonType, week
	return usecase.WeekSchedule{Season: season, SeasonType: seasonType, Week: week, Source: usecase.ScheduleSourceCache, Games: []usecase.WeekGame{}}, nil
}

func (f *fakeNFL) GetGameSummary(context.Context, string) (map[string]any, error) {
	return nil, fmt.Errorf("fetch game summary: %w", usecase.ErrProviderRateLimited)
}

type fakeStandings struct{}

func (fakeStandings) LeagueStandings(context.Context, int64) ([]fantasy.Standing, error) {
	return []fantasy.Standing{
		{Team: fantasy.Team{ID: 2, TeamName: "Gridiron Gang"}, TotalPoints: 120.5},
		{Team: fantasy.Team{ID: 1, TeamName: "Blitz"}, TotalPoints: 0},
	}, nil
}

type fakeLeaderboard struct{}

func (fakeLeaderboard) GroupLeaderboard(context.Context, int64) ([]pickem.LeaderboardEntry, error) {
	return []pickem.LeaderboardEntry{{UserID: 10, Username: "ana", Wins: 2, Losses: 1, TotalPicks: 3, WinPercentage: 66.67}}, nil
}

type fakePickem struct {
	PickemService
}

type fakeAuth struct {
	AuthService
	login string
}

func (f *fakeAuth) Register(_ context.Context, input usecase.RegisterInput) (usecase.AuthResult, error) {
	return usecase.AuthResult{
		Token:     "signed",
		ExpiresAt: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
		User:      user.User{ID: 9, Username: input.Username, Email: input.Email, PasswordHash: "$2a$10$hash"},
	}, nil
}

func (f *fakeAuth) Login(_ context.Context, login, _ string) (usecase.AuthResult, error) {
	f.login = login
	return usecase.AuthResult{}, fmt.Errorf("%w: invalid credentials", usecase.ErrUnauthorized)
}

type routerDeps struct {
	fantasy *fakeFantasy
	nfl     *fakeNFL
	auth    *fakeAuth
}

func newTestRouter(t *testing.T) (http.Handler, routerDeps) {
	t.Helper()

	deps := routerDeps{fantasy: &fakeFantasy{}, nfl: &fakeNFL{}, auth: &fakeAuth{}}
	handler := NewHandler(HandlerConfig{
		Auth:        deps.auth,
		NFL:         deps.nfl,
		Fantasy:     deps.fantasy,
		Standings:   fakeStandings{},
		Pickem:      &fakePickem{},
		Leaderboard: fakeLeaderboard{},
		Logger:      logging.NewNop(),
	})
	router := NewRouter(RouterConfig{
		Handler:  handler,
		Verifier: fakeVerifier{},
		Logger:   logging.NewNop(),
	})
	return router, deps
}

func serve(t *testing.T, router http.Handler, method, path, body string, authorized bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &payload), "body: %s", rec.Body.String())
	return rec, payload
}

func TestRouter_HealthIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, payload := serve(t, router, http.MethodGet, "/api/health", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "NFL Fantasy & Pick'em API is running", data["message"])
}

func TestRouter_RegisterAndLoginArePublic(t *testing.T) {
	router, deps := newTestRouter(t)

	rec, payload := serve(t, router, http.MethodPost, "/api/auth/register",
		`{"username":"ana","email":"ana@example.com","password":"secret1"}`, false)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := payload["data"].(map[string]any)
	assert.Equal(t, "signed", data["token"])
	assert.Equal(t, "2024-09-15T00:00:00Z", data["expires_at"])
	assert.NotContains(t, rec.Body.String(), "hash")

	bad, _ := serve(t, router, http.MethodPost, "/api/auth/register",
		`{"username":"ana","email":"not-an-email","password":"secret1"}`, false)
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	rec, _ = serve(t, router, http.MethodPost, "/api/auth/login", `{"username":"ana@example.com","password":"nope"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "ana@example.com", deps.auth.login)
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := serve(t, router, http.MethodGet, "/api/fantasy/leagues/1/standings", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/fantasy/leagues/1/standings", nil)
	req.Header.Set("Authorization", "Bearer forged")
	forged := httptest.NewRecorder()
	router.ServeHTTP(forged, req)
	assert.Equal(t, http.StatusUnauthorized, forged.Code)
}

func TestRouter_CreateLeague_UsesCaller(t *testing.T) {
	router, deps := newTestRouter(t)

	rec, payload := serve(t, router, http.MethodPost, "/api/fantasy/leagues",
		`{"name":"Sunday Squad","max_teams":10,"draft_date":"2024-09-01"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(5), deps.fantasy.createdBy)
	assert.Equal(t, 10, deps.fantasy.created.MaxTeams)
	require.NotNil(t, deps.fantasy.created.DraftDate)
	assert.Equal(t, 2024, deps.fantasy.created.DraftDate.Year())

	data := payload["data"].(map[string]any)
	assert.Equal(t, "Sunday Squad", data["name"])
}

func TestRouter_CreateLeague_RejectsBadPayloads(t *testing.T) {
	router, _ := newTestRouter(t)

	bodies := map[string]string{
		"unknown field": `{"name":"x","owner":"me"}`,
		"missing name":  `{"max_teams":10}`,
		"bad date":      `{"name":"x","draft_date":"next sunday"}`,
		"empty body":    ``,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			rec, payload := serve(t, router, http.MethodPost, "/api/fantasy/leagues", body, true)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			errBody := payload["error"].(map[string]any)
			assert.Equal(t, "INVALID_ARGUMENT", errBody["status"])
		})
	}
}

func TestRouter_JoinLeague_Conflict(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := serve(t, router, http.MethodPost, "/api/fantasy/leagues/1/join", `{"team_name":"Blitz"}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_WeekSchedule_ForwardsPathValues(t *testing.T) {
	router, deps := newTestRouter(t)

	rec, payload := serve(t, router, http.MethodGet, "/api/nfl/schedule/2024/REG/7", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2024, deps.nfl.season)
	assert.Equal(t, "REG", deps.nfl.seasonType)
	assert.Equal(t, 7, deps.nfl.week)

	data := payload["data"].(map[string]any)
	assert.Equal(t, usecase.ScheduleSourceCache, data["source"])
	assert.NotNil(t, data["games"])

	bad, _ := serve(t, router, http.MethodGet, "/api/nfl/schedule/2024/REG/seven", "", true)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestRouter_ProviderRateLimit(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, payload := serve(t, router, http.MethodGet, "/api/nfl/games/g1", "", true)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	errBody := payload["error"].(map[string]any)
	assert.Equal(t, "RESOURCE_EXHAUSTED", errBody["status"])
}

func TestRouter_StandingsAndLeaderboardAreRanked(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, payload := serve(t, router, http.MethodGet, "/api/fantasy/leagues/1/standings", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := payload["data"].([]any)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	assert.EqualValues(t, 1, first["rank"])
	assert.Equal(t, "Gridiron Gang", first["team_name"])
	assert.EqualValues(t, 120.5, first["total_points"])

	rec, payload = serve(t, router, http.MethodGet, "/api/pickem/groups/3/leaderboard", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := payload["data"].([]any)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 66.67, entries[0].(map[string]any)["win_percentage"])
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, payload := serve(t, router, http.MethodGet, "/api/pickem/groups", "", true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	errBody := payload["error"].(map[string]any)
	assert.Equal(t, "internal server error", errBody["message"])
}
