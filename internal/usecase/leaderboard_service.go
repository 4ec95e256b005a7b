package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/benbjohnson/clock"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
)

type LeaderboardService struct {
	groupRepo      pickem.GroupRepository
	memberRepo     pickem.MemberRepository
	pickRepo       pickem.PickRepository
	clock          clock.Clock
	logger         *logging.Logger
	maxConcurrency int
}

func NewLeaderboardService(
	groupRepo pickem.GroupRepository,
	memberRepo pickem.MemberRepository,
	pickRepo pickem.PickRepository,
	clk clock.Clock,
	logger *logging.Logger,
	maxConcurrency int,
) *LeaderboardService {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if maxConcurrency <= 0 {
		maxConcurrency = defaultAggregationConcurrency
	}
	return &LeaderboardService{
		groupRepo:      groupRepo,
		memberRepo:     memberRepo,
		pickRepo:       pickRepo,
		clock:          clk,
		logger:         logger.With("component", "leaderboard_service"),
		maxConcurrency: maxConcurrency,
	}
}

// GroupLeaderboard scores every member's picks on closed games of the
// current season, ordered by wins then win percentage.
func (s *LeaderboardService) GroupLeaderboard(ctx context.Context, groupID int64) ([]pickem.LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GroupLeaderboard")
	defer span.End()

	if groupID <= 0 {
		return nil, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	_, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: group=%d", ErrNotFound, groupID)
	}

	members, err := s.memberRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}

	season := schedule.CurrentSeason(s.clock.Now())
	mapper := iter.Mapper[pickem.Member, pickem.LeaderboardEntry]{MaxGoroutines: s.maxConcurrency}
	entries := mapper.Map(members, func(member *pickem.Member) pickem.LeaderboardEntry {
		picks, err := s.pickRepo.ListFinalized(ctx, groupID, member.UserID, season)
		if err != nil {
			s.logger.WarnContext(ctx, "list finalized picks failed, scoring zero", "group_id", groupID, "user_id", member.UserID, "season", season, "error", err)
			return pickem.Tally(member.UserID, member.Username, nil)
		}
		return pickem.Tally(member.UserID, member.Username, picks)
	})

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].WinPercentage > entries[j].WinPercentage
	})
	return entries, nil
}
