package auth

import (
	"net/http"
	"time"

	"sportsday/config"
	"sportsday/middleware"
	"sportsday/models"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrInvalidCredentials  = "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง"
	ErrTokenGenerateFailed = "ไม่สามารถสร้างเซสชันได้"
	ErrWrongPassword       = "รหัสผ่านปัจจุบันไม่ถูกต้อง"
	MsgLogoutSuccess       = "ออกจากระบบเรียบร้อยแล้ว"
	MsgPasswordChanged     = "เปลี่ยนรหัสผ่านเรียบร้อยแล้ว"
)

// LoginRequest model for login endpoints
type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// ChangePasswordRequest model for password changes
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// AuthResponse model for authentication responses
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// setCookieToken sets the authentication token as an HTTP-only cookie
func setCookieToken(c *gin.Context, token string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AuthCookieName,
		token,
		int(maxAge.Seconds()),
		"/",
		"",
		config.Current.SecureCookies,
		true,
	)
}
