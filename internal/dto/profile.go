package dto

import "github.com/SscSPs/user_auth_app/internal/core/domain"

// UpdateBioRequest carries the new bio text. An empty string clears the bio.
type UpdateBioRequest struct {
	Bio string `json:"bio" binding:"max=1000"`
}

// ProfileResponse is the public view of a user profile.
type ProfileResponse struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Bio        string `json:"bio"`
	StatusCode int    `json:"status_code"`
}

// ToProfileResponse maps a user to the profile payload.
func ToProfileResponse(user *domain.User, statusCode int) ProfileResponse {
	return ProfileResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		Bio:        user.Bio,
		StatusCode: statusCode,
	}
}
