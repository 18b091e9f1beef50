package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/user_auth_app/internal/apperrors"
	"github.com/SscSPs/user_auth_app/internal/core/domain"
	portsrepo "github.com/SscSPs/user_auth_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/user_auth_app/internal/core/ports/services"
)

// profileService implements ProfileSvcFacade.
type profileService struct {
	userRepo portsrepo.UserRepositoryFacade
	tokenSvc portssvc.TokenSvcFacade
}

// NewProfileService creates a new profileService.
func NewProfileService(userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade) portssvc.ProfileSvcFacade {
	return &profileService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

// resolveSubject verifies the access token and returns its owning user.
func (s *profileService) resolveSubject(ctx context.Context, accessToken string) (*domain.User, error) {
	claims, err := s.tokenSvc.VerifyToken(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: access token has no subject", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to find access token subject: %w", err)
	}
	return user, nil
}

// Me returns the profile of the token's owner.
func (s *profileService) Me(ctx context.Context, accessToken string) (*domain.User, error) {
	return s.resolveSubject(ctx, accessToken)
}

// UpdateBio replaces the caller's bio and returns the refreshed profile.
func (s *profileService) UpdateBio(ctx context.Context, accessToken string, bio string) (*domain.User, error) {
	user, err := s.resolveSubject(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateBio(ctx, user.UserID, bio); err != nil {
		return nil, fmt.Errorf("failed to update bio: %w", err)
	}

	updated, err := s.userRepo.FindUserByID(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read user after bio update: %w", err)
	}
	return updated, nil
}
