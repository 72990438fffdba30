package athletes

import (
	"sportsday/middleware"
	"sportsday/utils/permissions"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to athletes
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/athletes", GetAllAthletes)
	r.GET("/athletes/:id", GetAthlete)

	athletes := r.Group("/athletes")
	athletes.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRoles(permissions.ADMIN, permissions.ORGANIZER, permissions.TEAM_MANAGER),
	)
	{
		athletes.POST("", CreateAthlete)
		athletes.PUT("/:id", UpdateAthlete)
		athletes.DELETE("/:id", DeleteAthlete)
	}
}
