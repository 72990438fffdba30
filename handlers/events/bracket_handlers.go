package events

import (
	"net/http"

	"sportsday/handlers/common"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
)

// GetEventMatches lists the matches of an event in bracket order
// @Summary Get event matches
// @Tags Matches
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} models.Match
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/matches [get]
func GetEventMatches(c *gin.Context) {
	event, ok := findEvent(c, common.DB(c))
	if !ok {
		return
	}

	matches, err := eventMatches(c, event.ID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetBracket groups the matches of an event into rounds
// @Summary Get an event's bracket
// @Tags Matches
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} BracketResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/bracket [get]
func GetBracket(c *gin.Context) {
	event, ok := findEvent(c, common.DB(c))
	if !ok {
		return
	}

	matches, err := eventMatches(c, event.ID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, BracketResponse{
		EventID: event.ID,
		Rounds:  services.BuildBracket(matches),
	})
}

func eventMatches(c *gin.Context, eventID string) ([]models.Match, error) {
	var matches []models.Match
	err := common.DB(c).
		Preload("HomeColor").
		Preload("AwayColor").
		Preload("Participants.Athlete").
		Where("event_id = ?", eventID).
		Order("round ASC").Order("match_number ASC").
		Find(&matches).Error
	return matches, err
}
