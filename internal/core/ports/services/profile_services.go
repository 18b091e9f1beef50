package services

import (
	"context"

	"github.com/SscSPs/user_auth_app/internal/core/domain"
)

// ProfileSvcFacade defines the interface for authenticated profile access.
type ProfileSvcFacade interface {
	// Me resolves the access token to its owning user.
	Me(ctx context.Context, accessToken string) (*domain.User, error)

	// UpdateBio replaces the caller's bio and returns the refreshed profile.
	UpdateBio(ctx context.Context, accessToken string, bio string) (*domain.User, error)
}
