package domain

import "time"

// User represents a registered identity in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID), immutable, never reused
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Bio          string `json:"bio"`

	// Last-issued session tokens. The stored refresh token is the single
	// source of truth for refresh validity: a refresh request must present
	// exactly this value to succeed.
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// TokenClaims carries the verified payload of a session token.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
