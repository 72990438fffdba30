package auth

import (
	"errors"
	"net/http"
	"time"

	"sportsday/config"
	"sportsday/handlers/common"
	"sportsday/middleware"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// rememberMeTTL is the session lifetime when the user asks to stay signed in
const rememberMeTTL = 30 * 24 * time.Hour

// Login authenticates a user and issues the session token
// @Summary Login
// @Description Authenticate with username and password; the token is returned and set as an HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400,401 {object} response.ErrorResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	var user models.User
	if err := common.DB(c).Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
			return
		}
		response.ServerError(c, err)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		log.WithField("username", req.Username).Info("failed login attempt")
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	ttl := config.Current.TokenTTL
	if req.RememberMe {
		ttl = rememberMeTTL
	}
	token, err := utils.GenerateJWT(config.Current.JWTSecret, user.ID, user.Username, user.Role, ttl)
	if err != nil {
		log.WithError(err).Error(ErrTokenGenerateFailed)
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	now := time.Now()
	user.LastLogin = &now
	if err := common.DB(c).Model(&user).UpdateColumn("last_login", now).Error; err != nil {
		log.WithError(err).Warn("failed to update last login")
	}

	setCookieToken(c, token, ttl)
	middleware.SetUser(c, &user)
	common.Audit(c, services.ActionLogin, "user", user.ID, user.Username)

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: &user})
}

// CheckAuth returns the user owning the current session
// @Summary Check session
// @Description Returns the authenticated user
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var loaded models.User
	if err := common.DB(c).Preload("Color").First(&loaded, "id = ?", user.ID).Error; err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loaded)
}

// Logout clears the session cookie
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	setCookieToken(c, "", -time.Second)
	response.Message(c, http.StatusOK, MsgLogoutSuccess)
}

// ChangePassword updates the password of the current user
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} map[string]string
// @Failure 400,401 {object} response.ErrorResponse
// @Router /auth/password [put]
// @Security Bearer
func ChangePassword(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
		response.Error(c, http.StatusBadRequest, ErrWrongPassword)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if err := common.DB(c).Model(&models.User{}).Where("id = ?", user.ID).Update("password", hashed).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "user", user.ID, "password changed")
	response.Message(c, http.StatusOK, MsgPasswordChanged)
}
