package entity

import "time"

// Rep is a field sales representative allowed to log in.
type Rep struct {
	Id           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
