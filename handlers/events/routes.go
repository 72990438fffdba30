package events

import (
	"time"

	"sportsday/config"
	"sportsday/middleware"
	"sportsday/utils/permissions"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to events, their registrations, results, matches and votes
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/events", GetAllEvents)
	r.GET("/events/:id", GetEvent)
	r.GET("/events/:id/registrations", GetRegistrations)
	r.GET("/events/:id/results", GetResults)
	r.GET("/events/:id/results/export", ExportResults)
	r.GET("/events/:id/matches", GetEventMatches)
	r.GET("/events/:id/bracket", GetBracket)
	r.GET("/events/:id/vote-settings", GetVoteSettings)
	r.GET("/events/:id/votes/summary", GetVoteSummary)
	r.GET("/events/:id/vote-qrcode", GetVoteQRCode)

	voters := r.Group("/events/:id/votes")
	voters.Use(middleware.OptionalAuthMiddleware())
	{
		voteLimiter := middleware.NewRateLimiter(config.Current.RateLimit.VoteRate, config.Current.RateLimit.VoteBurst)
		voteLimiter.StartSweeper(10*time.Minute, 30*time.Minute)
		voters.POST("", middleware.RateLimiterMiddleware(voteLimiter), CastVote)
		voters.GET("/remaining", GetRemainingVotes)
	}

	managers := r.Group("/events/:id/registrations")
	managers.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRoles(permissions.ADMIN, permissions.ORGANIZER, permissions.TEAM_MANAGER),
	)
	{
		managers.POST("", CreateRegistration)
		managers.DELETE("/:registration_id", DeleteRegistration)
	}

	staff := r.Group("/events")
	staff.Use(middleware.AuthMiddleware(), middleware.RequireStaff())
	{
		staff.POST("", CreateEvent)
		staff.PUT("/:id", UpdateEvent)
		staff.PATCH("/:id/status", UpdateEventStatus)
		staff.DELETE("/:id", DeleteEvent)

		staff.PUT("/:id/results", RecordResults)
		staff.DELETE("/:id/results", ClearResults)

		staff.PUT("/:id/vote-settings", UpdateVoteSettings)
	}
}
