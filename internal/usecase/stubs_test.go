package usecase

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflplayer"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflteam"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/playerstats"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
)

type stubProvider struct {
	mu sync.Mutex

	teams       []ExternalTeam
	teamsErr    error
	season      ExternalSeasonSchedule
	seasonErr   error
	week        ExternalWeek
	weekErr     error
	stats       map[string]ExternalGameStatistics
	statsErr    map[string]error
	roster      ExternalRoster
	rosterErr   error
	document    map[string]any
	documentErr error

	weekCalls   int
	seasonCalls int
	statsCalls  int
}

func (s *stubProvider) FetchLeagueHierarchy(context.Context) ([]ExternalTeam, error) {
	return s.teams, s.teamsErr
}

func (s *stubProvider) FetchSeasonSchedule(context.Context, int, string) (ExternalSeasonSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasonCalls++
	return s.season, s.seasonErr
}

func (s *stubProvider) FetchWeekSchedule(context.Context, int, string, int) (ExternalWeek, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weekCalls++
	return s.week, s.weekErr
}

func (s *stubProvider) FetchGameSummary(context.Context, string) (map[string]any, error) {
	return s.document, s.documentErr
}

func (s *stubProvider) FetchGameStatistics(_ context.Context, gameID string) (ExternalGameStatistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statsCalls++
	if err := s.statsErr[gameID]; err != nil {
		return ExternalGameStatistics{}, err
	}
	return s.stats[gameID], nil
}

func (s *stubProvider) FetchTeamRoster(context.Context, string) (ExternalRoster, error) {
	return s.roster, s.rosterErr
}

func (s *stubProvider) FetchPlayerProfile(context.Context, string) (map[string]any, error) {
	return s.document, s.documentErr
}

type stubScheduleRepository struct {
	mu       sync.Mutex
	games    map[string]schedule.Game
	listErr  error
	upserted []schedule.Game
}

func (s *stubScheduleRepository) ListByWeek(_ context.Context, season, week int) ([]schedule.Game, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schedule.Game, 0)
	for _, game := range s.games {
		if game.Season == season && game.Week == week {
			out = append(out, game)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Scheduled < out[j].Scheduled })
	return out, nil
}

func (s *stubScheduleRepository) GetByID(_ context.Context, gameID string) (schedule.Game, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[gameID]
	return game, ok, nil
}

func (s *stubScheduleRepository) UpsertGames(_ context.Context, items []schedule.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserted = append(s.upserted, items...)
	return nil
}

type stubNFLTeamRepository struct {
	byID      map[string]nflteam.Team
	getErr    error
	upsertErr error
	upserted  []nflteam.Team
}

func (s *stubNFLTeamRepository) List(context.Context) ([]nflteam.Team, error) {
	out := make([]nflteam.Team, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	return out, nil
}

func (s *stubNFLTeamRepository) GetByID(_ context.Context, teamID string) (nflteam.Team, bool, error) {
	if s.getErr != nil {
		return nflteam.Team{}, false, s.getErr
	}
	item, ok := s.byID[teamID]
	return item, ok, nil
}

func (s *stubNFLTeamRepository) UpsertTeams(_ context.Context, items []nflteam.Team) error {
	s.upserted = append(s.upserted, items...)
	return s.upsertErr
}

type stubPlayerRepository struct {
	upserted    []nflplayer.Player
	searchQuery string
	searchLimit int
}

func (s *stubPlayerRepository) Search(_ context.Context, query string, limit int) ([]nflplayer.Player, error) {
	s.searchQuery = query
	s.searchLimit = limit
	return nil, nil
}

func (s *stubPlayerRepository) ListByTeam(context.Context, string) ([]nflplayer.Player, error) {
	return nil, nil
}

func (s *stubPlayerRepository) UpsertPlayers(_ context.Context, items []nflplayer.Player) error {
	s.upserted = append(s.upserted, items...)
	return nil
}

// stubStatsRepository answers SumLineupPoints from totals, or, when lineups
// is set, by summing upserted rows of the season whose player is in the team's
// lineup set.
type stubStatsRepository struct {
	mu       sync.Mutex
	upserted []playerstats.GameStat
	totals   map[int64]float64
	lineups  map[int64][]string
	sumErr   map[int64]error
	seasons  []int
}

func (s *stubStatsRepository) UpsertGameStats(_ context.Context, items []playerstats.GameStat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserted = append(s.upserted, items...)
	return nil
}

func (s *stubStatsRepository) SumLineupPoints(_ context.Context, teamID int64, season int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons = append(s.seasons, season)
	if err := s.sumErr[teamID]; err != nil {
		return 0, err
	}
	if s.lineups == nil {
		return s.totals[teamID], nil
	}
	var total float64
	for _, row := range s.upserted {
		if row.Season == season && slices.Contains(s.lineups[teamID], row.PlayerID) {
			total += row.FantasyPoints
		}
	}
	return total, nil
}
