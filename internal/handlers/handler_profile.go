package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/user_auth_app/internal/apperrors"
	portssvc "github.com/SscSPs/user_auth_app/internal/core/ports/services"
	"github.com/SscSPs/user_auth_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles authenticated profile reads and updates.
type ProfileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService portssvc.ProfileSvcFacade) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// registerProfileRoutes sets up the profile routes.
func registerProfileRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewProfileHandler(services.Profile)

	profile := rg.Group("/api/profile")
	{
		profile.GET("/me", h.Me)
		profile.PUT("/update", h.UpdateBio)
	}
}

// resolveBearerToken extracts the access token from the Authorization header.
const bearerPrefix = "Bearer "

func resolveBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", fmt.Errorf("%w: Authorization header missing or malformed", apperrors.ErrUnauthorized)
	}
	return header[len(bearerPrefix):], nil
}

// Me returns the authenticated user's public profile.
func (h *ProfileHandler) Me(c *gin.Context) {
	token, err := resolveBearerToken(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.profileService.Me(c.Request.Context(), token)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user, http.StatusOK))
}

// UpdateBio replaces the authenticated user's bio and returns the refreshed profile.
func (h *ProfileHandler) UpdateBio(c *gin.Context) {
	token, err := resolveBearerToken(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req dto.UpdateBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.profileService.UpdateBio(c.Request.Context(), token, req.Bio)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user, http.StatusOK))
}
