package repositories

import (
	"context"

	"github.com/SscSPs/user_auth_app/internal/core/domain"
)

// UserReader defines read operations for user data.
// Each lookup returns at most one record, or apperrors.ErrNotFound.
type UserReader interface {
	// FindUserByID retrieves a specific user by their external user ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByUsername retrieves a user by display name. Usernames are not
	// unique; the earliest created match wins.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when a
	// unique constraint (user_id, email) is violated.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateTokens overwrites the stored access/refresh token pair.
	// Concurrent callers are last-writer-wins on both columns.
	UpdateTokens(ctx context.Context, userID string, accessToken string, refreshToken string) error

	// UpdateBio replaces the user's bio text.
	UpdateBio(ctx context.Context, userID string, bio string) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
}

// UserLifecycleManager defines operations for managing user lifecycle.
type UserLifecycleManager interface {
	// DeleteUser removes the user record entirely.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
