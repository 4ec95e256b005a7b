package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
)

type CreateGroupInput struct {
	Name       string
	SeasonYear int
}

type MakePickInput struct {
	GameID       string
	PickedTeamID string
	Season       int
	Week         int
}

type PickemService struct {
	groupRepo  pickem.GroupRepository
	memberRepo pickem.MemberRepository
	pickRepo   pickem.PickRepository
	clock      clock.Clock
	logger     *logging.Logger
}

func NewPickemService(
	groupRepo pickem.GroupRepository,
	memberRepo pickem.MemberRepository,
	pickRepo pickem.PickRepository,
	clk clock.Clock,
	logger *logging.Logger,
) *PickemService {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PickemService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		pickRepo:   pickRepo,
		clock:      clk,
		logger:     logger.With("component", "pickem_service"),
	}
}

func (s *PickemService) ListGroups(ctx context.Context) ([]pickem.Group, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// CreateGroup stores the group and enrolls its creator as the first member.
func (s *PickemService) CreateGroup(ctx context.Context, adminID int64, input CreateGroupInput) (pickem.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickemService.CreateGroup")
	defer span.End()

	if adminID <= 0 {
		return pickem.Group{}, fmt.Errorf("%w: admin is required", ErrUnauthorized)
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return pickem.Group{}, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}
	season := input.SeasonYear
	if season <= 0 {
		season = schedule.CurrentSeason(s.clock.Now())
	}

	created, err := s.groupRepo.Create(ctx, pickem.Group{Name: name, AdminID: adminID, SeasonYear: season})
	if err != nil {
		return pickem.Group{}, fmt.Errorf("create group: %w", err)
	}

	if _, err := s.memberRepo.Add(ctx, created.ID, adminID); err != nil {
		s.logger.WarnContext(ctx, "enroll group creator failed", "group_id", created.ID, "user_id", adminID, "error", err)
	} else {
		created.MemberCount = 1
	}
	return created, nil
}

func (s *PickemService) GetGroup(ctx context.Context, groupID int64) (pickem.Group, error) {
	if groupID <= 0 {
		return pickem.Group{}, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}
	item, exists, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return pickem.Group{}, fmt.Errorf("get group: %w", err)
	}
	if !exists {
		return pickem.Group{}, fmt.Errorf("%w: group=%d", ErrNotFound, groupID)
	}
	return item, nil
}

func (s *PickemService) JoinGroup(ctx context.Context, userID, groupID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickemService.JoinGroup")
	defer span.End()

	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return err
	}
	added, err := s.memberRepo.Add(ctx, groupID, userID)
	if err != nil {
		return fmt.Errorf("add group member: %w", err)
	}
	if !added {
		return fmt.Errorf("%w: already a member of this group", ErrInvalidInput)
	}
	return nil
}

func (s *PickemService) ListMembers(ctx context.Context, groupID int64) ([]pickem.Member, error) {
	if groupID <= 0 {
		return nil, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}
	members, err := s.memberRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	return members, nil
}

// MakePick replaces any earlier pick of the caller on the same game.
func (s *PickemService) MakePick(ctx context.Context, userID, groupID int64, input MakePickInput) (pickem.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickemService.MakePick")
	defer span.End()

	pick := pickem.Pick{
		GroupID:      groupID,
		UserID:       userID,
		GameID:       strings.TrimSpace(input.GameID),
		PickedTeamID: strings.TrimSpace(input.PickedTeamID),
		Season:       input.Season,
		Week:         input.Week,
	}
	if pick.GameID == "" || pick.PickedTeamID == "" || pick.Season <= 0 || pick.Week <= 0 {
		return pickem.Pick{}, fmt.Errorf("%w: game id, picked team, season and week are required", ErrInvalidInput)
	}
	if groupID <= 0 {
		return pickem.Pick{}, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	member, err := s.memberRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return pickem.Pick{}, fmt.Errorf("check group membership: %w", err)
	}
	if !member {
		return pickem.Pick{}, fmt.Errorf("%w: you must be a member of this group", ErrForbidden)
	}

	saved, err := s.pickRepo.Upsert(ctx, pick)
	if err != nil {
		return pickem.Pick{}, fmt.Errorf("upsert pick: %w", err)
	}
	return saved, nil
}

// WeekPicks returns the caller's current-season picks for the week, joined
// to whatever the schedule cache knows about each game.
func (s *PickemService) WeekPicks(ctx context.Context, userID, groupID int64, week int) ([]pickem.PickWithGame, error) {
	if groupID <= 0 {
		return nil, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}
	if week <= 0 {
		return nil, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}
	season := schedule.CurrentSeason(s.clock.Now())
	picks, err := s.pickRepo.ListByWeek(ctx, groupID, userID, season, week)
	if err != nil {
		return nil, fmt.Errorf("list picks by week: %w", err)
	}
	return picks, nil
}
