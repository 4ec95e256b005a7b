package user

import "context"

type Repository interface {
	// Create fails with a conflict when username or email is taken.
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, userID int64) (User, bool, error)
	// GetByLogin matches either username or email.
	GetByLogin(ctx context.Context, login string) (User, bool, error)
}
