package user

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the authenticated caller carried through request context.
type Principal struct {
	UserID   int64
	Username string
	Email    string
}
