package cache

import (
	"context"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflteam"
	basecache "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/cache"
)

const (
	nflTeamKeyPrefix = "nflteam:"
	nflTeamListKey   = nflTeamKeyPrefix + "list"
)

// NFLTeamRepository keeps team rows in process memory. Writes go straight
// through and drop every cached team entry.
type NFLTeamRepository struct {
	next  nflteam.Repository
	cache *basecache.Store
}

func NewNFLTeamRepository(next nflteam.Repository, cache *basecache.Store) *NFLTeamRepository {
	return &NFLTeamRepository{next: next, cache: cache}
}

func (r *NFLTeamRepository) List(ctx context.Context) ([]nflteam.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, nflTeamListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]nflteam.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]nflteam.Team)
	return append([]nflteam.Team(nil), items...), nil
}

func (r *NFLTeamRepository) GetByID(ctx context.Context, teamID string) (nflteam.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, nflTeamKeyPrefix+"id:"+teamID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return nflteam.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *NFLTeamRepository) UpsertTeams(ctx context.Context, items []nflteam.Team) error {
	err := r.next.UpsertTeams(ctx, items)
	r.cache.DeletePrefix(ctx, nflTeamKeyPrefix)
	return err
}

type cachedTeam struct {
	value  nflteam.Team
	exists bool
}
