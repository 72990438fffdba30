package dashboard

import (
	"sportsday/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the scoreboard, statistics and live update routes
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/scoreboard", GetScoreboard)
	r.GET("/scoreboard/export", ExportScoreboard)

	r.GET("/ws/scoreboard", ScoreboardWebSocket)
	r.GET("/ws/events/:id", EventWebSocket)

	r.GET("/dashboard/stats", middleware.AuthMiddleware(), middleware.RequireStaff(), GetStats)
}
