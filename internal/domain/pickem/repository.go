package pickem

import "context"

type GroupRepository interface {
	List(ctx context.Context) ([]Group, error)
	ListByUser(ctx context.Context, userID int64) ([]Group, error)
	GetByID(ctx context.Context, groupID int64) (Group, bool, error)
	Create(ctx context.Context, group Group) (Group, error)
}

type MemberRepository interface {
	// Add reports false when the user already belongs to the group.
	Add(ctx context.Context, groupID, userID int64) (bool, error)
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
	ListByGroup(ctx context.Context, groupID int64) ([]Member, error)
}

type PickRepository interface {
	Upsert(ctx context.Context, pick Pick) (Pick, error)
	ListByWeek(ctx context.Context, groupID, userID int64, season, week int) ([]PickWithGame, error)
	ListFinalized(ctx context.Context, groupID, userID int64, season int) ([]FinalizedPick, error)
}
