package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/benbjohnson/clock"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/playerstats"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
)

const defaultAggregationConcurrency = 8

type StandingsService struct {
	leagueRepo     fantasy.LeagueRepository
	teamRepo       fantasy.TeamRepository
	statsRepo      playerstats.Repository
	clock          clock.Clock
	logger         *logging.Logger
	maxConcurrency int
}

func NewStandingsService(
	leagueRepo fantasy.LeagueRepository,
	teamRepo fantasy.TeamRepository,
	statsRepo playerstats.Repository,
	clk clock.Clock,
	logger *logging.Logger,
	maxConcurrency int,
) *StandingsService {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if maxConcurrency <= 0 {
		maxConcurrency = defaultAggregationConcurrency
	}
	return &StandingsService{
		leagueRepo:     leagueRepo,
		teamRepo:       teamRepo,
		statsRepo:      statsRepo,
		clock:          clk,
		logger:         logger.With("component", "standings_service"),
		maxConcurrency: maxConcurrency,
	}
}

// LeagueStandings totals current-season fantasy points per team and ranks
// them highest first. A team whose total cannot be computed scores zero.
func (s *StandingsService) LeagueStandings(ctx context.Context, leagueID int64) ([]fantasy.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.LeagueStandings")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	season := schedule.CurrentSeason(s.clock.Now())
	mapper := iter.Mapper[fantasy.Team, fantasy.Standing]{MaxGoroutines: s.maxConcurrency}
	standings := mapper.Map(teams, func(team *fantasy.Team) fantasy.Standing {
		total, err := s.statsRepo.SumLineupPoints(ctx, team.ID, season)
		if err != nil {
			s.logger.WarnContext(ctx, "sum lineup points failed, scoring zero", "league_id", leagueID, "team_id", team.ID, "season", season, "error", err)
			total = 0
		}
		return fantasy.Standing{Team: *team, TotalPoints: total}
	})

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalPoints > standings[j].TotalPoints
	})
	return standings, nil
}
