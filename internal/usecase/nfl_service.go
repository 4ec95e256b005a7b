package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflplayer"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflteam"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/playerstats"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	minDerivedSeason = 1920
	maxDerivedSeason = 2100
	maxDerivedWeek   = 25
)

type NFLServiceConfig struct {
	Provider       NFLDataProvider
	Teams          nflteam.Repository
	Schedule       schedule.Repository
	Players        nflplayer.Repository
	Stats          playerstats.Repository
	Resolver       *ScheduleResolver
	Clock          clock.Clock
	Logger         *logging.Logger
	SyncMaxWorkers int
}

// NFLService exposes provider data and keeps the local cache tables warm.
// Cache writes are best effort: a failed upsert is logged and the provider
// data is still returned.
type NFLService struct {
	provider       NFLDataProvider
	teamRepo       nflteam.Repository
	scheduleRepo   schedule.Repository
	playerRepo     nflplayer.Repository
	statsRepo      playerstats.Repository
	resolver       *ScheduleResolver
	clock          clock.Clock
	logger         *logging.Logger
	syncMaxWorkers int
}

func NewNFLService(cfg NFLServiceConfig) *NFLService {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = NewScheduleResolver(cfg.Schedule, cfg.Teams, cfg.Provider, logger)
	}
	workers := cfg.SyncMaxWorkers
	if workers <= 0 {
		workers = defaultStatsSyncWorkers
	}
	return &NFLService{
		provider:       cfg.Provider,
		teamRepo:       cfg.Teams,
		scheduleRepo:   cfg.Schedule,
		playerRepo:     cfg.Players,
		statsRepo:      cfg.Stats,
		resolver:       resolver,
		clock:          clk,
		logger:         logger.With("component", "nfl_service"),
		syncMaxWorkers: workers,
	}
}

func (s *NFLService) CurrentSeason() int {
	return schedule.CurrentSeason(s.clock.Now())
}

func (s *NFLService) ListTeams(ctx context.Context) ([]nflteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NFLService.ListTeams")
	defer span.End()

	external, err := s.provider.FetchLeagueHierarchy(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch league hierarchy: %w", err)
	}

	teams := make([]nflteam.Team, 0, len(external))
	for _, item := range external {
		teams = append(teams, nflteam.Team{
			ID:         item.ID,
			Name:       item.Name,
			Market:     item.Market,
			Alias:      item.Alias,
			Conference: item.Conference,
			Division:   item.Division,
			VenueName:  item.VenueName,
		})
	}

	if err := s.teamRepo.UpsertTeams(ctx, teams); err != nil {
		s.logger.WarnContext(ctx, "cache teams failed", "count", len(teams), "error", err)
	}
	return teams, nil
}

// GetSeasonSchedule defaults to the current season when season is not positive.
func (s *NFLService) GetSeasonSchedule(ctx context.Context, season int, seasonType string) (ExternalSeasonSchedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NFLService.GetSeasonSchedule")
	defer span.End()

	if season <= 0 {
		season = s.CurrentSeason()
	}
	seasonType = schedule.NormalizeSeasonType(seasonType)

	out, err := s.provider.FetchSeasonSchedule(ctx, season, seasonType)
	if err != nil {
		return ExternalSeasonSchedule{}, fmt.Errorf("fetch season schedule: %w", err)
	}

	games := make([]schedule.Game, 0, 288)
	for _, week := range out.Weeks {
		for _, game := range week.Games {
			games = append(games, schedule.Game{
				ID:         game.ID,
				Season:     season,
				Week:       week.Sequence,
				Scheduled:  game.Scheduled,
				HomeTeamID: game.Home.ID,
				AwayTeamID: game.Away.ID,
				Status:     schedule.NormalizeStatus(game.Status),
				HomeScore:  game.HomePoints,
				AwayScore:  game.AwayPoints,
			})
		}
	}

	if err := s.scheduleRepo.UpsertGames(ctx, games); err != nil {
		s.logger.WarnContext(ctx, "cache season schedule failed", "season", season, "season_type", seasonType, "count", len(games), "error", err)
	}
	return out, nil
}

func (s *NFLService) GetWeekSchedule(ctx context.Context, season int, seasonType string, week int) (WeekSchedule, error) {
	return s.resolver.ResolveWeek(ctx, season, seasonType, week)
}

func (s *NFLService) GetGameSummary(ctx context.Context, gameID string) (map[string]any, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NFLService.GetGameSummary")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}
	doc, err := s.provider.FetchGameSummary(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetch game summary: %w", err)
	}
	return doc, nil
}

func (s *NFLService) GetPlayerProfile(ctx context.Context, playerID string) (map[string]any, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NFLService.GetPlayerProfile")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	doc, err := s.provider.FetchPlayerProfile(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetch player profile: %w", err)
	}
	return doc, nil
}

func (s *NFLService) GetTeamRoster(ctx context.Context, teamID string) (ExternalRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NFLService.GetTeamRoster")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return ExternalRoster{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	roster, err := s.provider.FetchTeamRoster(ctx, teamID)
	if err != nil {
		return ExternalRoster{}, fmt.Errorf("fetch team roster: %w", err)
	}

	players := make([]nflplayer.Player, 0, len(roster.Players))
	for _, item := range roster.Players {
		players = append(players, nflplayer.Player{
			ID:           item.ID,
			Name:         item.Name,
			Position:     item.Position,
			TeamID:       teamID,
			JerseyNumber: item.JerseyNumber,
		})
	}
	if err := s.playerRepo.UpsertPlayers(ctx, players); err != nil {
		s.logger.WarnContext(ctx, "cache roster failed", "team_id", teamID, "count", len(players), "error", err)
	}
	return roster, nil
}

func (s *NFLService) SearchPlayers(ctx context.Context, query string) ([]nflplayer.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NFLService.SearchPlayers")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	players, err := s.playerRepo.Search(ctx, query, nflplayer.DefaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return players, nil
}

type ScoredPlayerLine struct {
	PlayerID      string               `json:"player_id"`
	Name          string               `json:"name"`
	Position      string               `json:"position"`
	Side          string               `json:"side"`
	Line          playerstats.StatLine `json:"line"`
	FantasyPoints float64              `json:"fantasy_points"`
}

type GameStatisticsResult struct {
	GameID     string             `json:"game_id"`
	Season     int                `json:"season"`
	Week       int                `json:"week"`
	Statistics map[string]any     `json:"statistics"`
	Players    []ScoredPlayerLine `json:"players"`
}

// GetGameStatistics scores every player line of the game and caches the rows.
func (s *NFLService) GetGameStatistics(ctx context.Context, gameID string) (_ GameStatisticsResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NFLService.GetGameStatistics", attribute.String("nfl.game_id", gameID))
	defer func() { endUsecaseSpan(span, err) }()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return GameStatisticsResult{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	season, week, ok := s.cachedSeasonWeek(ctx, gameID)
	if !ok {
		season, week = deriveSeasonWeek(gameID, s.CurrentSeason())
	}
	return s.ingestGameStatistics(ctx, gameID, season, week)
}

// ingestGameStatistics stores every line of the game under season and week.
func (s *NFLService) ingestGameStatistics(ctx context.Context, gameID string, season, week int) (GameStatisticsResult, error) {
	stats, err := s.provider.FetchGameStatistics(ctx, gameID)
	if err != nil {
		return GameStatisticsResult{}, fmt.Errorf("fetch game statistics: %w", err)
	}

	result := GameStatisticsResult{
		GameID:     gameID,
		Season:     season,
		Week:       week,
		Statistics: stats.Document,
		Players:    make([]ScoredPlayerLine, 0, len(stats.Home)+len(stats.Away)),
	}

	rows := make([]playerstats.GameStat, 0, len(stats.Home)+len(stats.Away))
	appendSide := func(side string, items []ExternalPlayerStat) {
		for _, item := range items {
			row := playerstats.NewGameStat(item.PlayerID, gameID, season, week, item.Line)
			rows = append(rows, row)
			result.Players = append(result.Players, ScoredPlayerLine{
				PlayerID:      item.PlayerID,
				Name:          item.Name,
				Position:      item.Position,
				Side:          side,
				Line:          item.Line,
				FantasyPoints: row.FantasyPoints,
			})
		}
	}
	appendSide("home", stats.Home)
	appendSide("away", stats.Away)

	if err := s.statsRepo.UpsertGameStats(ctx, rows); err != nil {
		return GameStatisticsResult{}, fmt.Errorf("upsert game stats game=%s: %w", gameID, err)
	}
	return result, nil
}

// cachedSeasonWeek reads season and week from the cached schedule row.
func (s *NFLService) cachedSeasonWeek(ctx context.Context, gameID string) (int, int, bool) {
	game, exists, err := s.scheduleRepo.GetByID(ctx, gameID)
	if err != nil || !exists || game.Season <= 0 || game.Week <= 0 {
		return 0, 0, false
	}
	return game.Season, game.Week, true
}

// deriveSeasonWeek reads the first two dash-separated parts of the id as
// season and week, falling back to the current season and week 1.
func deriveSeasonWeek(gameID string, currentSeason int) (int, int) {
	season, week := currentSeason, 1
	parts := strings.Split(gameID, "-")
	if v, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && v >= minDerivedSeason && v <= maxDerivedSeason {
		season = v
	}
	if len(parts) > 1 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && v >= 1 && v <= maxDerivedWeek {
			week = v
		}
	}
	return season, week
}
