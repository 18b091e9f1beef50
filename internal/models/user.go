package models

import "time"

// User represents a row of the users table.
// Username is deliberately not unique; user_id and email are.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Bio          string `db:"bio"`

	AccessToken  string `db:"access_token"`
	RefreshToken string `db:"refresh_token"`

	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
