package middleware

import (
	"errors"
	"net/http"
	"strings"

	"sportsday/config"
	"sportsday/database"
	"sportsday/models"
	"sportsday/utils"
	"sportsday/utils/permissions"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	AuthCookieName = "auth_token"
	userContextKey = "user"
)

const (
	ErrNoTokenProvided = "กรุณาเข้าสู่ระบบ"
	ErrInvalidToken    = "เซสชันไม่ถูกต้องหรือหมดอายุ กรุณาเข้าสู่ระบบใหม่"
	ErrUserNotFound    = "ไม่พบผู้ใช้งาน"
)

var errNoToken = errors.New("no token provided")

// extractToken reads the session token from the cookie or the Authorization header
func extractToken(c *gin.Context) (string, error) {
	if token, err := c.Cookie(AuthCookieName); err == nil && token != "" {
		return token, nil
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), nil
	}
	return "", errNoToken
}

// loadUser resolves the token to the stored user so role changes apply immediately
func loadUser(c *gin.Context) (*models.User, error) {
	token, err := extractToken(c)
	if err != nil {
		return nil, err
	}
	claims, err := utils.ParseJWT(config.Current.JWTSecret, token)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := database.DB.WithContext(c.Request.Context()).First(&user, "id = ?", claims.UserID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthMiddleware rejects requests without a valid session
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := loadUser(c)
		if err != nil {
			msg := ErrInvalidToken
			if errors.Is(err, errNoToken) {
				msg = ErrNoTokenProvided
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: msg})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid session is present and lets anonymous requests through
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := loadUser(c); err == nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not listed
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetOptionalUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: ErrNoTokenProvided})
			return
		}
		if !permissions.HasRole(user, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: response.ErrForbidden})
			return
		}
		c.Next()
	}
}

// RequireStaff rejects users who are neither admins nor organizers
func RequireStaff() gin.HandlerFunc {
	return RequireRoles(permissions.ADMIN, permissions.ORGANIZER)
}

// GetUserFromRequest returns the authenticated user, answering 401 when there is none
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
	user := GetOptionalUser(c)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, ErrNoTokenProvided)
		return nil, errNoToken
	}
	return user, nil
}

// GetOptionalUser returns the authenticated user or nil
func GetOptionalUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SetUser attaches a user to the request, used right after login so the audit trail knows the actor
func SetUser(c *gin.Context, user *models.User) {
	c.Set(userContextKey, user)
}
