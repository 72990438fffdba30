package awards

import (
	"sportsday/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to awards
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/awards", GetAllAwards)
	r.GET("/awards/:id", GetAward)

	awards := r.Group("/awards")
	awards.Use(middleware.AuthMiddleware(), middleware.RequireStaff())
	{
		awards.POST("", CreateAward)
		awards.PUT("/:id", UpdateAward)
		awards.DELETE("/:id", DeleteAward)

		awards.POST("/:id/winners", AddWinner)
		awards.DELETE("/:id/winners/:winner_id", RemoveWinner)
	}
}
