package users

import (
	"errors"
	"net/http"

	"sportsday/handlers/common"
	"sportsday/middleware"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils"
	"sportsday/utils/permissions"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUsers retrieves all users
// @Summary Get all users
// @Description Get all users, optionally filtered by role
// @Tags Users
// @Produce json
// @Param role query string false "Role filter"
// @Success 200 {array} models.User
// @Failure 401,403 {object} response.ErrorResponse
// @Router /users [get]
// @Security Bearer
func GetUsers(c *gin.Context) {
	query := common.DB(c).Preload("Color").Order("username ASC")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser retrieves a user by ID
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
// @Security Bearer
func GetUser(c *gin.Context) {
	var user models.User
	if err := common.DB(c).Preload("Color").First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
			return
		}
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser creates a new account
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User to create"
// @Success 201 {object} models.User
// @Failure 400,409 {object} response.ErrorResponse
// @Router /users [post]
// @Security Bearer
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if msg, ok := validateRoleColor(c, req.Role, req.ColorID); !ok {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	user := models.User{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    hashed,
		Role:        req.Role,
		ColorID:     req.ColorID,
	}
	if err := common.DB(c).Create(&user).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionCreate, "user", user.ID, user.Username)
	c.JSON(http.StatusCreated, user)
}

// UpdateUser updates the profile, role or password of a user
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400,404 {object} response.ErrorResponse
// @Router /users/{id} [put]
// @Security Bearer
func UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	var user models.User
	if err := common.DB(c).First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
			return
		}
		response.ServerError(c, err)
		return
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.ColorID != nil {
		if *req.ColorID == "" {
			user.ColorID = nil
		} else {
			user.ColorID = req.ColorID
		}
	}
	if msg, ok := validateRoleColor(c, user.Role, user.ColorID); !ok {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			response.ServerError(c, err)
			return
		}
		user.Password = hashed
	}

	// Save would also write the preloaded color, so only the user's columns are selected
	if err := common.DB(c).Model(&user).
		Select("display_name", "role", "color_id", "password").
		Updates(&user).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "user", user.ID, user.Username)
	c.JSON(http.StatusOK, user)
}

// DeleteUser deletes an account
// @Summary Delete a user
// @Tags Users
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400,404 {object} response.ErrorResponse
// @Router /users/{id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
	current, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	userID := c.Param("id")
	if current.ID == userID {
		response.Error(c, http.StatusBadRequest, ErrCannotDeleteSelf)
		return
	}

	result := common.DB(c).Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		common.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	common.Audit(c, services.ActionDelete, "user", userID, "")
	c.Status(http.StatusNoContent)
}

// validateRoleColor checks that team managers are bound to an existing color
func validateRoleColor(c *gin.Context, role string, colorID *string) (string, bool) {
	if !permissions.IsValidRole(role) {
		return ErrInvalidRole, false
	}
	if colorID == nil || *colorID == "" {
		if role == permissions.TEAM_MANAGER {
			return ErrColorRequired, false
		}
		return "", true
	}

	var count int64
	if err := common.DB(c).Model(&models.Color{}).Where("id = ?", *colorID).Count(&count).Error; err != nil || count == 0 {
		return ErrColorNotFound, false
	}
	return "", true
}
