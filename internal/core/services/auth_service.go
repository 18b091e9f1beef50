package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/SscSPs/user_auth_app/internal/apperrors"
	"github.com/SscSPs/user_auth_app/internal/core/domain"
	portsrepo "github.com/SscSPs/user_auth_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/user_auth_app/internal/core/ports/services"
	"github.com/SscSPs/user_auth_app/internal/dto"
	"github.com/SscSPs/user_auth_app/internal/platform/config"
	"github.com/SscSPs/user_auth_app/internal/utils"
	"github.com/google/uuid"
)

// Passwords may contain letters, digits and common punctuation only.
var passwordCharset = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*()_+\-]+$`)

// authService implements AuthSvcFacade: the signup/signin/refresh state machine.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	tokenSvc portssvc.TokenSvcFacade
	cfg      *config.Config
}

// NewAuthService creates a new authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		cfg:      cfg,
	}
}

// Signup registers a new user with a freshly generated user ID, empty bio
// and no tokens.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	userID := uuid.NewString()

	// A generated UUID colliding with an existing one is astronomically
	// unlikely; surface it as a conflict so the caller may simply retry.
	if _, err := s.userRepo.FindUserByID(ctx, userID); err == nil {
		return nil, fmt.Errorf("%w: generated user ID already exists", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check user ID availability: %w", err)
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}

	if !passwordCharset.MatchString(req.Password) {
		return nil, fmt.Errorf("%w: password may only contain letters, digits and !@#$%%^&*()_+-", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(req.Password, s.cfg.HasherParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        userID,
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  passwordHash,
		Bio:           "",
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	// SaveUser maps a concurrent unique-constraint violation to ErrDuplicate.
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save new user: %w", err)
	}

	return &user, nil
}

// Signin verifies credentials, always issues a fresh access token and
// reuses the stored refresh token while it remains valid.
func (s *authService) Signin(ctx context.Context, req dto.SigninRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	ok, err := utils.CheckPasswordHash(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: password mismatch", apperrors.ErrUnauthorized)
	}

	accessToken, err := s.tokenSvc.CreateAccessToken(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	// Reuse the stored refresh token while it still verifies; mint a new one
	// only when it is absent, expired or tampered with. This keeps
	// refresh-token churn minimal while guaranteeing a valid one is always
	// present after signin.
	refreshToken := user.RefreshToken
	if _, err := s.tokenSvc.VerifyToken(ctx, refreshToken); err != nil {
		refreshToken, err = s.tokenSvc.CreateRefreshToken(ctx, user.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to create refresh token: %w", err)
		}
	}

	if err := s.userRepo.UpdateTokens(ctx, user.UserID, accessToken, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist tokens: %w", err)
	}

	updated, err := s.userRepo.FindUserByID(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read user after signin: %w", err)
	}
	return updated, nil
}

// RefreshToken mints a new access token for the owner of a valid, current
// refresh token. The stored refresh token is authoritative: a well-signed but
// superseded token is rejected.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	claims, err := s.tokenSvc.VerifyToken(ctx, refreshToken)
	if err != nil {
		// Both the expired and the invalid kind stay reachable via errors.Is.
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: refresh token has no subject", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to find refresh token subject: %w", err)
	}

	if user.RefreshToken != refreshToken {
		return nil, fmt.Errorf("%w: refresh token does not match the stored one", apperrors.ErrUnauthorized)
	}

	accessToken, err := s.tokenSvc.CreateAccessToken(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	// Only the access token rotates here; the refresh token stays unchanged.
	if err := s.userRepo.UpdateTokens(ctx, user.UserID, accessToken, user.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist access token: %w", err)
	}

	updated, err := s.userRepo.FindUserByID(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read user after refresh: %w", err)
	}
	return updated, nil
}
