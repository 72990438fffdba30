package v1

import (
	"time"

	"sportsday/config"
	"sportsday/handlers/athletes"
	"sportsday/handlers/auth"
	"sportsday/handlers/awards"
	"sportsday/handlers/colors"
	"sportsday/handlers/dashboard"
	"sportsday/handlers/events"
	"sportsday/handlers/logs"
	"sportsday/handlers/majors"
	"sportsday/handlers/matches"
	"sportsday/handlers/sporttypes"
	"sportsday/handlers/users"
	"sportsday/handlers/votes"
	"sportsday/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(config.Current.RateLimit.Rate, config.Current.RateLimit.Burst)
	rateLimiter.StartSweeper(10*time.Minute, 30*time.Minute)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterOpsRoutes(v1)
	auth.RegisterRoutes(v1)
	users.RegisterRoutes(v1)
	colors.RegisterRoutes(v1)
	majors.RegisterRoutes(v1)
	athletes.RegisterRoutes(v1)
	sporttypes.RegisterRoutes(v1)
	events.RegisterRoutes(v1)
	matches.RegisterRoutes(v1)
	votes.RegisterRoutes(v1)
	awards.RegisterRoutes(v1)
	logs.RegisterRoutes(v1)
	dashboard.RegisterRoutes(v1)
}
