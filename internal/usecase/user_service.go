package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/user"
)

type UserService struct {
	userRepo  user.Repository
	teamRepo  fantasy.TeamRepository
	groupRepo pickem.GroupRepository
}

func NewUserService(userRepo user.Repository, teamRepo fantasy.TeamRepository, groupRepo pickem.GroupRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		teamRepo:  teamRepo,
		groupRepo: groupRepo,
	}
}

// GetProfile never exposes the password hash.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (user.User, error) {
	if userID <= 0 {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}
	item.PasswordHash = ""
	return item, nil
}

func (s *UserService) ListFantasyTeams(ctx context.Context, userID int64) ([]fantasy.Team, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	teams, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams by user: %w", err)
	}
	return teams, nil
}

func (s *UserService) ListPickemGroups(ctx context.Context, userID int64) ([]pickem.Group, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	groups, err := s.groupRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list groups by user: %w", err)
	}
	return groups, nil
}
