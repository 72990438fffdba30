package users

import (
	"sportsday/middleware"
	"sportsday/utils/permissions"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to users
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RequireRoles(permissions.ADMIN))
	{
		users.GET("", GetUsers)
		users.GET("/:id", GetUser)
		users.POST("", CreateUser)
		users.PUT("/:id", UpdateUser)
		users.DELETE("/:id", DeleteUser)
	}
}
