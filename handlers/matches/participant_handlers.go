package matches

import (
	"errors"
	"net/http"

	"sportsday/handlers/common"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddParticipant puts an athlete on one side of a match
// @Summary Add a match participant
// @Description When the side has a color, the athlete must belong to it
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param participant body ParticipantRequest true "Participant"
// @Success 201 {object} models.MatchParticipant
// @Failure 400,404,409 {object} response.ErrorResponse
// @Router /matches/{id}/participants [post]
// @Security Bearer
func AddParticipant(c *gin.Context) {
	var req ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	match, ok := findMatch(c, common.DB(c))
	if !ok {
		return
	}

	var athlete models.Athlete
	if err := common.DB(c).First(&athlete, "id = ?", req.AthleteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrAthleteNotFound)
			return
		}
		response.ServerError(c, err)
		return
	}

	sideColor := match.HomeColorID
	if req.Side == models.SideAway {
		sideColor = match.AwayColorID
	}
	if sideColor != nil && *sideColor != athlete.ColorID {
		response.Error(c, http.StatusBadRequest, ErrWrongSide)
		return
	}

	participant := models.MatchParticipant{
		MatchID:   match.ID,
		AthleteID: athlete.ID,
		Side:      req.Side,
	}
	if err := common.DB(c).Create(&participant).Error; err != nil {
		if common.IsDuplicate(err) {
			response.Error(c, http.StatusConflict, ErrAlreadyParticipant)
			return
		}
		common.RespondError(c, err)
		return
	}

	participant.Athlete = &athlete
	common.Audit(c, services.ActionCreate, "match_participant", participant.ID, athlete.StudentCode)
	c.JSON(http.StatusCreated, participant)
}

// RemoveParticipant takes an athlete off a match
// @Summary Remove a match participant
// @Tags Matches
// @Param id path string true "Match ID"
// @Param participant_id path string true "Participant ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /matches/{id}/participants/{participant_id} [delete]
// @Security Bearer
func RemoveParticipant(c *gin.Context) {
	result := common.DB(c).
		Where("id = ? AND match_id = ?", c.Param("participant_id"), c.Param("id")).
		Delete(&models.MatchParticipant{})
	if result.Error != nil {
		common.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
		return
	}

	common.Audit(c, services.ActionDelete, "match_participant", c.Param("participant_id"), "")
	c.Status(http.StatusNoContent)
}
