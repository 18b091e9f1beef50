package dto

import "github.com/SscSPs/user_auth_app/internal/core/domain"

// SignupRequest carries the registration payload.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=255"`
}

// SigninRequest carries login credentials.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse is returned on successful registration. It never carries
// hash material.
type SignupResponse struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	StatusCode int    `json:"status_code"`
}

// SigninResponse is returned on successful login. The refresh token travels
// in a cookie, not in the body.
type SigninResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	StatusCode  int    `json:"status_code"`
}

// RefreshTokenResponse is returned when a new access token is minted.
type RefreshTokenResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	StatusCode  int    `json:"status_code"`
}

// ToSignupResponse maps a created user to the signup payload.
func ToSignupResponse(user *domain.User, statusCode int) SignupResponse {
	return SignupResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		StatusCode: statusCode,
	}
}

// ToSigninResponse maps a signed-in user to the signin payload.
func ToSigninResponse(user *domain.User, statusCode int) SigninResponse {
	return SigninResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		AccessToken: user.AccessToken,
		StatusCode:  statusCode,
	}
}

// ToRefreshTokenResponse maps a refreshed user to the refresh payload.
func ToRefreshTokenResponse(user *domain.User, statusCode int) RefreshTokenResponse {
	return RefreshTokenResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		AccessToken: user.AccessToken,
		StatusCode:  statusCode,
	}
}
