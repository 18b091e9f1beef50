package services

import (
	"context"

	"github.com/SscSPs/user_auth_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for session token management.
type TokenSvcFacade interface {
	// CreateAccessToken issues a short-lived signed token whose subject is the user's ID.
	CreateAccessToken(ctx context.Context, userID string) (string, error)

	// CreateRefreshToken issues a long-lived signed token whose subject is the user's ID.
	CreateRefreshToken(ctx context.Context, userID string) (string, error)

	// VerifyToken validates signature and expiry and returns the claims.
	// Fails with apperrors.ErrTokenExpired past expiry and
	// apperrors.ErrTokenInvalid on a bad signature or structure.
	VerifyToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error)
}
