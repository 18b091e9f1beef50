package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetRefreshTokenCookie stores the refresh token in an HttpOnly, Secure,
// SameSite=Strict cookie that expires together with the token.
func SetRefreshTokenCookie(c *gin.Context, name string, token string, path string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, token, int(maxAge.Seconds()), path, "", true, true)
}

// ClearRefreshTokenCookie removes the refresh token cookie.
func ClearRefreshTokenCookie(c *gin.Context, name string, path string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, "", -1, path, "", true, true)
}
