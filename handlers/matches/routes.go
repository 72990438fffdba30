package matches

import (
	"sportsday/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to matches
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/matches", GetAllMatches)
	r.GET("/matches/:id", GetMatch)

	matches := r.Group("/matches")
	matches.Use(middleware.AuthMiddleware(), middleware.RequireStaff())
	{
		matches.POST("", CreateMatch)
		matches.PUT("/:id", UpdateMatch)
		matches.PATCH("/:id/score", UpdateScore)
		matches.DELETE("/:id", DeleteMatch)

		matches.POST("/:id/participants", AddParticipant)
		matches.DELETE("/:id/participants/:participant_id", RemoveParticipant)
	}
}
