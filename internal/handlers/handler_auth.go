package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/user_auth_app/internal/core/ports/services"
	"github.com/SscSPs/user_auth_app/internal/dto"
	"github.com/SscSPs/user_auth_app/internal/platform/config"
	"github.com/SscSPs/user_auth_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the signup, signin and refresh endpoints.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// registerOauthRoutes sets up the account routes. The /oauth prefix is kept
// for API compatibility; there is no social login behind it.
func registerOauthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Auth, cfg)

	oauth := rg.Group("/api/oauth")
	{
		oauth.POST("/signup", h.Signup)
		oauth.POST("/signin", h.Signin)
		oauth.POST("/refresh", h.Refresh)
	}
}

// Signup registers a new user account. The response never includes hash material.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSignupResponse(user, http.StatusCreated))
}

// Signin authenticates a user, returns a fresh access token and sets the
// refresh token cookie.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.authService.Signin(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SetRefreshTokenCookie(c,
		h.cfg.RefreshTokenCookieName,
		user.RefreshToken,
		h.cfg.RefreshTokenCookiePath,
		h.cfg.RefreshTokenExpiryDuration,
	)

	c.JSON(http.StatusOK, dto.ToSigninResponse(user, http.StatusOK))
}

// Refresh reads the refresh token cookie and mints a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token cookie missing"})
		return
	}

	user, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRefreshTokenResponse(user, http.StatusOK))
}
