package sportradar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/resilience"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "secret-key-123"

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL + "/",
		APIKey:         testAPIKey,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClient_FetchLeagueHierarchy(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/league/hierarchy.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != testAPIKey {
			t.Errorf("unexpected api key: %s", got)
		}
		_, _ = w.Write([]byte(`{
			"conferences": [{
				"name": "AFC",
				"divisions": [{
					"name": "AFC East",
					"teams": [
						{"id": "t-buf", "name": "Bills", "market": "Buffalo", "alias": "BUF", "venue": {"name": "Highmark Stadium"}},
						{"id": "t-mia", "name": "Dolphins", "market": "Miami", "alias": "MIA"},
						{"name": "missing id"}
					]
				}]
			}]
		}`))
	}, resilience.CircuitBreakerConfig{})

	teams, err := client.FetchLeagueHierarchy(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, usecase.ExternalTeam{
		ID: "t-buf", Name: "Bills", Market: "Buffalo", Alias: "BUF",
		Conference: "AFC", Division: "AFC East", VenueName: "Highmark Stadium",
	}, teams[0])
	assert.Equal(t, "", teams[1].VenueName)
}

func TestClient_FetchWeekSchedule(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games/2024/REG/6/schedule.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"year": 2024,
			"week": {
				"sequence": 6,
				"title": "6",
				"games": [
					{"id": "g1", "scheduled": "2024-10-13T17:00:00+00:00", "status": "closed",
					 "home": {"id": "h1", "alias": "BUF"}, "away": {"id": "a1", "alias": "NYJ"},
					 "scoring": {"home_points": 20, "away_points": 23}},
					{"id": "g2", "home": {"id": "h2"}, "away": {"id": "a2"}}
				]
			}
		}`))
	}, resilience.CircuitBreakerConfig{})

	week, err := client.FetchWeekSchedule(context.Background(), 2024, "reg", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, week.Sequence)
	require.Len(t, week.Games, 2)

	first := week.Games[0]
	assert.Equal(t, "closed", first.Status)
	require.NotNil(t, first.HomePoints)
	require.NotNil(t, first.AwayPoints)
	assert.Equal(t, 20, *first.HomePoints)
	assert.Equal(t, 23, *first.AwayPoints)

	second := week.Games[1]
	assert.Equal(t, "scheduled", second.Status)
	assert.Nil(t, second.HomePoints)
	assert.Nil(t, second.AwayPoints)
}

func TestClient_FetchSeasonSchedule(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games/2024/PST/schedule.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"type": "PST",
			"weeks": [
				{"sequence": 1, "title": "Wild Card", "games": [{"id": "g1", "home": {"id": "h"}, "away": {"id": "a"}}]},
				{"sequence": 2, "title": "Divisional", "games": []}
			]
		}`))
	}, resilience.CircuitBreakerConfig{})

	season, err := client.FetchSeasonSchedule(context.Background(), 2024, "PST")
	require.NoError(t, err)
	assert.Equal(t, 2024, season.Season)
	assert.Equal(t, "PST", season.Type)
	require.Len(t, season.Weeks, 2)
	assert.Equal(t, "Wild Card", season.Weeks[0].Title)
	assert.Len(t, season.Weeks[0].Games, 1)
	assert.Empty(t, season.Weeks[1].Games)
}

func TestClient_FetchTeamRoster_FallsBackToFirstAndLastName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams/t-buf/full_roster.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"players": [
				{"id": "p1", "name": "Josh Allen", "position": "QB", "jersey": "17"},
				{"id": "p2", "first_name": "James", "last_name": "Cook", "position": "RB", "jersey_number": 4}
			]
		}`))
	}, resilience.CircuitBreakerConfig{})

	roster, err := client.FetchTeamRoster(context.Background(), "t-buf")
	require.NoError(t, err)
	assert.Equal(t, "t-buf", roster.TeamID)
	require.Len(t, roster.Players, 2)
	assert.Equal(t, usecase.ExternalPlayer{ID: "p1", Name: "Josh Allen", Position: "QB", JerseyNumber: "17"}, roster.Players[0])
	assert.Equal(t, usecase.ExternalPlayer{ID: "p2", Name: "James Cook", Position: "RB", JerseyNumber: "4"}, roster.Players[1])
}

func TestClient_FetchGameStatistics_AbsentFieldsDecodeToZero(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "2024-6-g1",
			"statistics": {
				"home": {"players": [
					{"id": "qb1", "name": "QB One", "position": "QB",
					 "passing": {"yards": 250, "touchdowns": 2, "interceptions": 1}}
				]},
				"away": {"players": [
					{"id": "wr1", "receiving": {"yards": 60, "touchdowns": 1, "receptions": 5}, "fumbles": {"lost": 1}},
					{"id": "k1"}
				]}
			}
		}`))
	}, resilience.CircuitBreakerConfig{})

	stats, err := client.FetchGameStatistics(context.Background(), "2024-6-g1")
	require.NoError(t, err)
	require.Len(t, stats.Home, 1)
	require.Len(t, stats.Away, 2)

	assert.Equal(t, 250, stats.Home[0].Line.PassingYards)
	assert.Equal(t, 1, stats.Home[0].Line.PassingInts)
	assert.Equal(t, 5, stats.Away[0].Line.Receptions)
	assert.Equal(t, 1, stats.Away[0].Line.FumblesLost)
	assert.Zero(t, stats.Away[1].Line)
	assert.NotNil(t, stats.Document["statistics"])
}

func TestClient_ErrorClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"not found"}`, want: usecase.ErrProviderNotFound},
		{name: "too many requests", status: http.StatusTooManyRequests, body: `{}`, want: usecase.ErrProviderRateLimited},
		{name: "developer over qps", status: http.StatusForbidden, body: `<h1>Developer Over Qps</h1>`, want: usecase.ErrProviderRateLimited},
		{name: "forbidden", status: http.StatusForbidden, body: `<h1>Not Authorized</h1>`, want: usecase.ErrProviderFailure},
		{name: "server error", status: http.StatusBadGateway, body: `oops`, want: usecase.ErrProviderFailure},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}, resilience.CircuitBreakerConfig{})

			_, err := client.FetchGameSummary(context.Background(), "g1")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if strings.Contains(err.Error(), testAPIKey) {
				t.Fatalf("error leaks api key: %v", err)
			}
		})
	}
}

func TestClient_CircuitBreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		_, err := client.FetchPlayerProfile(context.Background(), "p1")
		require.ErrorIs(t, err, usecase.ErrProviderFailure)
	}

	_, err := client.FetchPlayerProfile(context.Background(), "p1")
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_CanceledBackoffIsProviderFailure(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		cancel()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		APIKey:     testAPIKey,
		MaxRetries: 3,
		Logger:     logging.NewNop(),
		Clock:      clock.NewMock(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	_, err := client.FetchGameStatistics(ctx, "g1")
	require.ErrorIs(t, err, usecase.ErrProviderFailure)
	assert.NotContains(t, err.Error(), testAPIKey)

	_, err = client.FetchGameStatistics(context.Background(), "g1")
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_NotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
	})

	for i := 0; i < 3; i++ {
		_, err := client.FetchWeekSchedule(context.Background(), 2024, "REG", 19)
		require.ErrorIs(t, err, usecase.ErrProviderNotFound)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_RejectsBlankIDs(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	_, err := client.FetchTeamRoster(context.Background(), "  ")
	require.ErrorIs(t, err, usecase.ErrInvalidInput)

	_, err = client.FetchWeekSchedule(context.Background(), 2024, "REG", 0)
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestRedactAPIURL(t *testing.T) {
	t.Parallel()

	got := redactAPIURL("https://api.sportradar.com/nfl/official/trial/v7/en/league/hierarchy.json?api_key=" + testAPIKey)
	if strings.Contains(got, testAPIKey) {
		t.Fatalf("api key not redacted: %s", got)
	}
	if !strings.Contains(got, "api_key=REDACTED") {
		t.Fatalf("expected redaction marker, got %s", got)
	}

	text := sanitizeSensitiveText(`Get "https://x/y?api_key=abc&z=1": dial tcp`, "")
	if !strings.Contains(text, "api_key=REDACTED") || strings.Contains(text, "api_key=abc") {
		t.Fatalf("unexpected sanitized text: %s", text)
	}
}
