package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
)

type CreateLeagueInput struct {
	Name       string
	SeasonYear int
	MaxTeams   int
	DraftDate  *time.Time
}

type AddRosterPlayerInput struct {
	PlayerID   string
	PlayerName string
	Position   string
	TeamAbbr   string
}

type SetLineupInput struct {
	Season int
	Week   int
	QB     string
	RB1    string
	RB2    string
	WR1    string
	WR2    string
	TE     string
	Flex   string
	K      string
	Def    string
}

type FantasyService struct {
	leagueRepo fantasy.LeagueRepository
	teamRepo   fantasy.TeamRepository
	rosterRepo fantasy.RosterRepository
	lineupRepo fantasy.LineupRepository
	clock      clock.Clock
}

func NewFantasyService(
	leagueRepo fantasy.LeagueRepository,
	teamRepo fantasy.TeamRepository,
	rosterRepo fantasy.RosterRepository,
	lineupRepo fantasy.LineupRepository,
	clk clock.Clock,
) *FantasyService {
	if clk == nil {
		clk = clock.New()
	}
	return &FantasyService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		rosterRepo: rosterRepo,
		lineupRepo: lineupRepo,
		clock:      clk,
	}
}

func (s *FantasyService) ListLeagues(ctx context.Context) ([]fantasy.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *FantasyService) CreateLeague(ctx context.Context, commissionerID int64, input CreateLeagueInput) (fantasy.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.CreateLeague")
	defer span.End()

	if commissionerID <= 0 {
		return fantasy.League{}, fmt.Errorf("%w: commissioner is required", ErrUnauthorized)
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return fantasy.League{}, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if input.MaxTeams < 0 {
		return fantasy.League{}, fmt.Errorf("%w: max teams must not be negative", ErrInvalidInput)
	}

	item := fantasy.League{
		Name:           name,
		CommissionerID: commissionerID,
		SeasonYear:     input.SeasonYear,
		MaxTeams:       input.MaxTeams,
		DraftDate:      input.DraftDate,
	}
	if item.SeasonYear <= 0 {
		item.SeasonYear = schedule.CurrentSeason(s.clock.Now())
	}
	if item.MaxTeams == 0 {
		item.MaxTeams = fantasy.DefaultMaxTeams
	}

	created, err := s.leagueRepo.Create(ctx, item)
	if err != nil {
		return fantasy.League{}, fmt.Errorf("create league: %w", err)
	}
	return created, nil
}

func (s *FantasyService) GetLeague(ctx context.Context, leagueID int64) (fantasy.League, error) {
	if leagueID <= 0 {
		return fantasy.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return fantasy.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fantasy.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}
	return item, nil
}

func (s *FantasyService) ListLeagueTeams(ctx context.Context, leagueID int64) ([]fantasy.Team, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}
	return teams, nil
}

// JoinLeague creates the caller's team in the league.
func (s *FantasyService) JoinLeague(ctx context.Context, userID, leagueID int64, teamName string) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.JoinLeague")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	league, err := s.GetLeague(ctx, leagueID)
	if err != nil {
		return fantasy.Team{}, err
	}
	if league.IsFull() {
		return fantasy.Team{}, fmt.Errorf("%w: league is full", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByLeagueAndUser(ctx, leagueID, userID)
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("get team by league and user: %w", err)
	}
	if exists {
		return fantasy.Team{}, fmt.Errorf("%w: you already have a team in this league", ErrConflict)
	}

	created, err := s.teamRepo.Create(ctx, fantasy.Team{
		LeagueID: leagueID,
		UserID:   userID,
		TeamName: teamName,
	})
	if errors.Is(err, fantasy.ErrTeamAlreadyExists) {
		return fantasy.Team{}, fmt.Errorf("%w: you already have a team in this league", ErrConflict)
	}
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("create team: %w", err)
	}
	return created, nil
}

func (s *FantasyService) ListRoster(ctx context.Context, teamID int64) ([]fantasy.RosterEntry, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	items, err := s.rosterRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return items, nil
}

func (s *FantasyService) AddRosterPlayer(ctx context.Context, userID, teamID int64, input AddRosterPlayerInput) (fantasy.RosterEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.AddRosterPlayer")
	defer span.End()

	entry := fantasy.RosterEntry{
		TeamID:     teamID,
		PlayerID:   strings.TrimSpace(input.PlayerID),
		PlayerName: strings.TrimSpace(input.PlayerName),
		Position:   strings.TrimSpace(input.Position),
		TeamAbbr:   strings.TrimSpace(input.TeamAbbr),
	}
	if entry.PlayerID == "" || entry.PlayerName == "" || entry.Position == "" {
		return fantasy.RosterEntry{}, fmt.Errorf("%w: player id, name and position are required", ErrInvalidInput)
	}
	if err := s.requireOwnership(ctx, userID, teamID); err != nil {
		return fantasy.RosterEntry{}, err
	}

	created, err := s.rosterRepo.Add(ctx, entry)
	if err != nil {
		return fantasy.RosterEntry{}, fmt.Errorf("add roster player: %w", err)
	}
	return created, nil
}

// SetLineup replaces the team's lineup for the week.
func (s *FantasyService) SetLineup(ctx context.Context, userID, teamID int64, input SetLineupInput) (fantasy.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.SetLineup")
	defer span.End()

	if input.Season <= 0 || input.Week <= 0 {
		return fantasy.Lineup{}, fmt.Errorf("%w: season and week are required", ErrInvalidInput)
	}
	if err := s.requireOwnership(ctx, userID, teamID); err != nil {
		return fantasy.Lineup{}, err
	}

	saved, err := s.lineupRepo.Upsert(ctx, fantasy.Lineup{
		TeamID: teamID,
		Season: input.Season,
		Week:   input.Week,
		QB:     strings.TrimSpace(input.QB),
		RB1:    strings.TrimSpace(input.RB1),
		RB2:    strings.TrimSpace(input.RB2),
		WR1:    strings.TrimSpace(input.WR1),
		WR2:    strings.TrimSpace(input.WR2),
		TE:     strings.TrimSpace(input.TE),
		Flex:   strings.TrimSpace(input.Flex),
		K:      strings.TrimSpace(input.K),
		Def:    strings.TrimSpace(input.Def),
	})
	if err != nil {
		return fantasy.Lineup{}, fmt.Errorf("upsert lineup: %w", err)
	}
	return saved, nil
}

func (s *FantasyService) GetLineup(ctx context.Context, teamID int64, season, week int) (fantasy.Lineup, error) {
	if teamID <= 0 || season <= 0 || week <= 0 {
		return fantasy.Lineup{}, fmt.Errorf("%w: team, season and week are required", ErrInvalidInput)
	}
	item, exists, err := s.lineupRepo.Get(ctx, teamID, season, week)
	if err != nil {
		return fantasy.Lineup{}, fmt.Errorf("get lineup: %w", err)
	}
	if !exists {
		return fantasy.Lineup{}, fmt.Errorf("%w: lineup team=%d season=%d week=%d", ErrNotFound, teamID, season, week)
	}
	return item, nil
}

func (s *FantasyService) requireOwnership(ctx context.Context, userID, teamID int64) error {
	if teamID <= 0 {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	team, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists || team.UserID != userID {
		return fmt.Errorf("%w: unauthorized or team not found", ErrForbidden)
	}
	return nil
}
