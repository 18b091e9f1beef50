package services

import (
	"context"

	"github.com/SscSPs/user_auth_app/internal/core/domain"
	"github.com/SscSPs/user_auth_app/internal/dto"
)

// AuthSvcFacade defines the interface for the signup/signin/refresh flows.
type AuthSvcFacade interface {
	// Signup registers a new user. The returned user carries no tokens and
	// an empty bio. Fails with apperrors.ErrDuplicate when the email (or,
	// astronomically rarely, the generated user ID) is already taken, and
	// apperrors.ErrValidation when the password contains characters outside
	// the allowed set.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// Signin verifies credentials and returns the user with a freshly issued
	// access token and a valid refresh token populated. Fails with
	// apperrors.ErrNotFound for an unknown email and
	// apperrors.ErrUnauthorized for a wrong password.
	Signin(ctx context.Context, req dto.SigninRequest) (*domain.User, error)

	// RefreshToken mints a new access token for the owner of the presented
	// refresh token. The presented token must byte-for-byte equal the
	// stored one; anything else fails with apperrors.ErrUnauthorized.
	RefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}
