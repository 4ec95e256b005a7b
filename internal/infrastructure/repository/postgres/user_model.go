package postgres

import "time"

type userTableModel struct {
	ID           int64     `db:"id" insert:"omit"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at" insert:"omit"`
}
