package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/playerstats"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	fantasymock "github.com/riskibarqy/nfl-fantasy-pickem/internal/mocks/domain/fantasy"
	"github.com/stretchr/testify/mock"
)

func newMockClock(t *testing.T, date string) *clock.Mock {
	t.Helper()
	now, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date %s: %v", date, err)
	}
	clk := clock.NewMock()
	clk.Set(now)
	return clk
}

func TestStandingsService_LeagueStandings_SortsAndZeroesFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := fantasymock.NewLeagueRepository(t)
	teamRepo := fantasymock.NewTeamRepository(t)
	statsRepo := &stubStatsRepository{
		totals: map[int64]float64{1: 88.5, 2: 120.25, 4: 88.5},
		sumErr: map[int64]error{3: errors.New("statement timeout")},
	}

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(7)).
		Return(fantasy.League{ID: 7, Name: "Sunday Squad"}, true, nil).
		Once()
	teamRepo.
		On("ListByLeague", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(7)).
		Return([]fantasy.Team{
			{ID: 1, LeagueID: 7, TeamName: "Alpha"},
			{ID: 2, LeagueID: 7, TeamName: "Bravo"},
			{ID: 3, LeagueID: 7, TeamName: "Charlie"},
			{ID: 4, LeagueID: 7, TeamName: "Delta"},
		}, nil).
		Once()

	service := NewStandingsService(leagueRepo, teamRepo, statsRepo, newMockClock(t, "2025-01-10"), logging.NewNop(), 2)
	got, err := service.LeagueStandings(ctx, 7)
	if err != nil {
		t.Fatalf("league standings: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(got))
	}

	wantOrder := []int64{2, 1, 4, 3}
	for i, id := range wantOrder {
		if got[i].Team.ID != id {
			t.Fatalf("unexpected order at %d: got=%d want=%d", i, got[i].Team.ID, id)
		}
	}
	if got[3].TotalPoints != 0 {
		t.Fatalf("failing team must score zero, got %v", got[3].TotalPoints)
	}
	for _, season := range statsRepo.seasons {
		if season != 2024 {
			t.Fatalf("expected season 2024 for a January date, got %d", season)
		}
	}
}

func TestStandingsService_LeagueStandings_SumsEveryWeekOfSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := fantasymock.NewLeagueRepository(t)
	teamRepo := fantasymock.NewTeamRepository(t)
	statsRepo := &stubStatsRepository{lineups: map[int64][]string{
		1: {"qb1", "wr1"},
		2: {"rb1"},
	}}
	if err := statsRepo.UpsertGameStats(ctx, []playerstats.GameStat{
		playerstats.NewGameStat("qb1", "2024-01-kc-bal", 2024, 1, playerstats.StatLine{PassingYards: 300, PassingTDs: 2}),
		playerstats.NewGameStat("wr1", "2024-01-kc-bal", 2024, 1, playerstats.StatLine{Receptions: 6, ReceivingYards: 80, ReceivingTDs: 1}),
		playerstats.NewGameStat("rb1", "2024-01-buf-ari", 2024, 1, playerstats.StatLine{RushingYards: 70}),
		playerstats.NewGameStat("qb1", "2024-02-kc-cin", 2024, 2, playerstats.StatLine{PassingYards: 200, PassingTDs: 1, PassingInts: 1}),
		playerstats.NewGameStat("wr1", "2024-02-kc-cin", 2024, 2, playerstats.StatLine{Receptions: 3, ReceivingYards: 45}),
		playerstats.NewGameStat("rb1", "2024-02-buf-mia", 2024, 2, playerstats.StatLine{RushingYards: 100, RushingTDs: 1}),
		playerstats.NewGameStat("qb1", "2023-01-kc-det", 2023, 1, playerstats.StatLine{PassingTDs: 5}),
	}); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	leagueRepo.On("GetByID", mock.Anything, int64(3)).Return(fantasy.League{ID: 3}, true, nil).Once()
	teamRepo.On("ListByLeague", mock.Anything, int64(3)).Return([]fantasy.Team{
		{ID: 1, LeagueID: 3, TeamName: "Alpha"},
		{ID: 2, LeagueID: 3, TeamName: "Bravo"},
	}, nil).Once()

	service := NewStandingsService(leagueRepo, teamRepo, statsRepo, newMockClock(t, "2024-12-01"), logging.NewNop(), 2)
	got, err := service.LeagueStandings(ctx, 3)
	if err != nil {
		t.Fatalf("league standings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	// Alpha: 20 + 20 in week 1, 10 + 7.5 in week 2. The 2023 row is excluded.
	if got[0].Team.ID != 1 || math.Abs(got[0].TotalPoints-57.5) > 0.0001 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	if got[1].Team.ID != 2 || math.Abs(got[1].TotalPoints-23) > 0.0001 {
		t.Fatalf("unexpected runner-up: %+v", got[1])
	}
}

func TestStandingsService_LeagueStandings_LeagueNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := fantasymock.NewLeagueRepository(t)
	teamRepo := fantasymock.NewTeamRepository(t)

	leagueRepo.
		On("GetByID", mock.Anything, int64(404)).
		Return(fantasy.League{}, false, nil).
		Once()

	service := NewStandingsService(leagueRepo, teamRepo, &stubStatsRepository{}, nil, logging.NewNop(), 0)
	_, err := service.LeagueStandings(ctx, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandingsService_LeagueStandings_NoTeams(t *testing.T) {
	t.Parallel()

	leagueRepo := fantasymock.NewLeagueRepository(t)
	teamRepo := fantasymock.NewTeamRepository(t)

	leagueRepo.On("GetByID", mock.Anything, int64(1)).Return(fantasy.League{ID: 1}, true, nil).Once()
	teamRepo.On("ListByLeague", mock.Anything, int64(1)).Return([]fantasy.Team{}, nil).Once()

	service := NewStandingsService(leagueRepo, teamRepo, &stubStatsRepository{}, nil, logging.NewNop(), 4)
	got, err := service.LeagueStandings(context.Background(), 1)
	if err != nil {
		t.Fatalf("league standings: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}
