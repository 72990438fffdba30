package votes

import (
	"net/http"

	"sportsday/handlers/common"
	"sportsday/middleware"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the vote moderation routes
func RegisterRoutes(r *gin.RouterGroup) {
	votes := r.Group("/votes")
	votes.Use(middleware.AuthMiddleware(), middleware.RequireStaff())
	{
		votes.GET("", GetVotes)
		votes.PATCH("/:id/invalidate", InvalidateVote)
	}
}

// GetVotes lists the ballots of an event, newest first
// @Summary Get votes
// @Tags Votes
// @Produce json
// @Param event_id query string true "Event ID"
// @Param valid query bool false "Only valid or only invalid ballots"
// @Success 200 {array} models.Vote
// @Failure 400 {object} response.ErrorResponse
// @Router /votes [get]
// @Security Bearer
func GetVotes(c *gin.Context) {
	eventID := c.Query("event_id")
	if eventID == "" {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidRequest)
		return
	}

	query := common.DB(c).Preload("Athlete").Where("event_id = ?", eventID)
	switch c.Query("valid") {
	case "true":
		query = query.Where("is_valid = ?", true)
	case "false":
		query = query.Where("is_valid = ?", false)
	}

	var votes []models.Vote
	if err := query.Order("created_at DESC").Find(&votes).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, votes)
}

// InvalidateVote discards a ballot and removes it from the athlete's count
// @Summary Invalidate a vote
// @Tags Votes
// @Produce json
// @Param id path string true "Vote ID"
// @Success 200 {object} models.Vote
// @Failure 404,409 {object} response.ErrorResponse
// @Router /votes/{id}/invalidate [patch]
// @Security Bearer
func InvalidateVote(c *gin.Context) {
	vote, err := services.InvalidateVote(common.DB(c), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionInvalidate, "vote", vote.ID, vote.AthleteID)
	c.JSON(http.StatusOK, vote)
}
