package services

import (
	"context"
	"time"

	"github.com/SscSPs/user_auth_app/internal/core/domain"
	portssvc "github.com/SscSPs/user_auth_app/internal/core/ports/services"
	"github.com/SscSPs/user_auth_app/internal/platform/config"
	"github.com/SscSPs/user_auth_app/internal/utils"
)

// tokenService implements TokenSvcFacade on top of HS256 JWTs. Access and
// refresh tokens share the signing key and differ only in TTL.
type tokenService struct {
	cfg *config.Config
	now func() time.Time
}

// NewTokenService creates a new tokenService using the wall clock.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return NewTokenServiceWithClock(cfg, time.Now)
}

// NewTokenServiceWithClock creates a tokenService with an injected clock so
// expiry behaviour can be tested deterministically.
func NewTokenServiceWithClock(cfg *config.Config, now func() time.Time) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, now: now}
}

// CreateAccessToken issues a short-lived token for the given user.
func (s *tokenService) CreateAccessToken(ctx context.Context, userID string) (string, error) {
	return utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.now(), s.cfg.AccessTokenExpiryDuration)
}

// CreateRefreshToken issues a long-lived token for the given user.
func (s *tokenService) CreateRefreshToken(ctx context.Context, userID string) (string, error) {
	return utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.now(), s.cfg.RefreshTokenExpiryDuration)
}

// VerifyToken validates the token against the service clock and returns its claims.
func (s *tokenService) VerifyToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret, s.now())
	if err != nil {
		return nil, err
	}

	tc := &domain.TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		tc.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		tc.ExpiresAt = claims.ExpiresAt.Time
	}
	return tc, nil
}
