package matches

import (
	"errors"
	"fmt"
	"net/http"

	"sportsday/handlers/common"
	"sportsday/models"
	"sportsday/realtime"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllMatches lists matches, optionally of one event or status
// @Summary Get all matches
// @Tags Matches
// @Produce json
// @Param event_id query string false "Event filter"
// @Param status query string false "SCHEDULED, LIVE, COMPLETED or CANCELLED"
// @Success 200 {array} models.Match
// @Router /matches [get]
func GetAllMatches(c *gin.Context) {
	query := common.DB(c).Preload("HomeColor").Preload("AwayColor")

	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if status := c.Query("status"); status != "" {
		if !models.IsValidMatchStatus(status) {
			response.Error(c, http.StatusBadRequest, ErrInvalidStatus)
			return
		}
		query = query.Where("status = ?", status)
	}

	var matches []models.Match
	if err := query.Order("scheduled_at ASC").Order("round ASC").Order("match_number ASC").Find(&matches).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetMatch returns a match with colors and participants
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} response.ErrorResponse
// @Router /matches/{id} [get]
func GetMatch(c *gin.Context) {
	match, ok := findMatch(c, common.DB(c).Preload("HomeColor").Preload("AwayColor").Preload("Participants.Athlete"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, match)
}

// CreateMatch adds a match to an event's bracket
// @Summary Create a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body MatchRequest true "Match"
// @Success 201 {object} models.Match
// @Failure 400 {object} response.ErrorResponse
// @Router /matches [post]
// @Security Bearer
func CreateMatch(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !validateMatchRequest(c, req, "") {
		return
	}

	match := models.Match{Status: models.MatchScheduled}
	applyRequest(&match, req)
	if err := common.DB(c).Create(&match).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionCreate, "match", match.ID, fmt.Sprintf("round %d match %d", match.Round, match.MatchNumber))
	matchChanged(match)
	c.JSON(http.StatusCreated, match)
}

// UpdateMatch replaces a match's pairing and schedule
// @Summary Update a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param match body MatchRequest true "Match"
// @Success 200 {object} models.Match
// @Failure 400,404 {object} response.ErrorResponse
// @Router /matches/{id} [put]
// @Security Bearer
func UpdateMatch(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	match, ok := findMatch(c, common.DB(c))
	if !ok {
		return
	}
	if !validateMatchRequest(c, req, match.ID) {
		return
	}

	applyRequest(match, req)
	if err := common.DB(c).Save(match).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "match", match.ID, "")
	matchChanged(*match)
	c.JSON(http.StatusOK, match)
}

// UpdateScore sets the live score of a match and pushes it to the event's subscribers
// @Summary Update a match score
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param score body ScoreRequest true "Score"
// @Success 200 {object} models.Match
// @Failure 400,404 {object} response.ErrorResponse
// @Router /matches/{id}/score [patch]
// @Security Bearer
func UpdateScore(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	match, ok := findMatch(c, common.DB(c))
	if !ok {
		return
	}

	match.HomeScore = req.HomeScore
	match.AwayScore = req.AwayScore
	if req.Status != "" {
		match.Status = req.Status
	}
	if err := common.DB(c).Model(match).Select("home_score", "away_score", "status").Updates(match).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdateScore, "match", match.ID,
		fmt.Sprintf("%d-%d %s", match.HomeScore, match.AwayScore, match.Status))
	matchChanged(*match)
	c.JSON(http.StatusOK, match)
}

// DeleteMatch removes a match; matches that fed into it lose their next match link
// @Summary Delete a match
// @Tags Matches
// @Param id path string true "Match ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /matches/{id} [delete]
// @Security Bearer
func DeleteMatch(c *gin.Context) {
	match, ok := findMatch(c, common.DB(c))
	if !ok {
		return
	}

	err := common.DB(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Match{}).Where("next_match_id = ?", match.ID).
			Update("next_match_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Vote{}).Where("match_id = ?", match.ID).
			Update("match_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", match.ID).Delete(&models.MatchParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(match).Error
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionDelete, "match", match.ID, "")
	matchChanged(*match)
	c.Status(http.StatusNoContent)
}

func findMatch(c *gin.Context, db *gorm.DB) (*models.Match, bool) {
	var match models.Match
	if err := db.First(&match, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrMatchNotFound)
			return nil, false
		}
		response.ServerError(c, err)
		return nil, false
	}
	return &match, true
}

func validateMatchRequest(c *gin.Context, req MatchRequest, matchID string) bool {
	db := common.DB(c)

	var count int64
	if err := db.Model(&models.Event{}).Where("id = ?", req.EventID).Count(&count).Error; err != nil {
		response.ServerError(c, err)
		return false
	}
	if count == 0 {
		response.Error(c, http.StatusBadRequest, ErrEventNotFound)
		return false
	}

	home, away := normalizeID(req.HomeColorID), normalizeID(req.AwayColorID)
	if home != nil && away != nil && *home == *away {
		response.Error(c, http.StatusBadRequest, ErrSameColors)
		return false
	}
	for _, colorID := range []*string{home, away} {
		if colorID == nil {
			continue
		}
		if err := db.Model(&models.Color{}).Where("id = ?", *colorID).Count(&count).Error; err != nil {
			response.ServerError(c, err)
			return false
		}
		if count == 0 {
			response.Error(c, http.StatusBadRequest, ErrColorNotFound)
			return false
		}
	}

	if next := normalizeID(req.NextMatchID); next != nil {
		if *next == matchID {
			response.Error(c, http.StatusBadRequest, ErrInvalidNextMatch)
			return false
		}
		if err := db.Model(&models.Match{}).Where("id = ? AND event_id = ?", *next, req.EventID).Count(&count).Error; err != nil {
			response.ServerError(c, err)
			return false
		}
		if count == 0 {
			response.Error(c, http.StatusBadRequest, ErrInvalidNextMatch)
			return false
		}
	}
	return true
}

func applyRequest(match *models.Match, req MatchRequest) {
	match.EventID = req.EventID
	match.HomeColorID = normalizeID(req.HomeColorID)
	match.AwayColorID = normalizeID(req.AwayColorID)
	match.Round = req.Round
	match.MatchNumber = req.MatchNumber
	match.ScheduledAt = req.ScheduledAt
	match.Venue = req.Venue
	match.NextMatchID = normalizeID(req.NextMatchID)
	if req.Status != "" {
		match.Status = req.Status
	}
}

func normalizeID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

// matchChanged pushes a match to the subscribers of its event
func matchChanged(match models.Match) {
	realtime.Publish(realtime.Update{
		Channel:    realtime.EventChannel(match.EventID),
		UpdateType: realtime.UpdateMatch,
		Payload:    match,
	})
}
