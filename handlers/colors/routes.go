package colors

import (
	"sportsday/middleware"
	"sportsday/utils/permissions"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to colors
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/colors", GetAllColors)
	r.GET("/colors/:id", GetColor)

	colors := r.Group("/colors")
	colors.Use(middleware.AuthMiddleware(), middleware.RequireRoles(permissions.ADMIN))
	{
		colors.POST("", CreateColor)
		colors.PUT("/:id", UpdateColor)
		colors.DELETE("/:id", DeleteColor)
	}
}
