package awards

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

// GetAllAwards lists awards with their winners
// @Summary Get all awards
// @Tags Awards
// @Produce json
// @Param event_id query string false "Event filter"
// @Success 200 {array} models.Award
// @Router /awards [get]
func GetAllAwards(c *gin.Context) {
	query := common.DB(c).Preload("Event").Preload("Winners.Athlete.Color")
	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}

	var awards []models.Award
	if err := query.Order("name ASC").Find(&awards).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, awards)
}

// GetAward returns one award with its winners
// @Summary Get an award
// @Tags Awards
// @Produce json
// @Param id path string true "Award ID"
// @Success 200 {object} models.Award
// @Failure 404 {object} response.ErrorResponse
// @Router /awards/{id} [get]
func GetAward(c *gin.Context) {
	award, ok := findAward(c, common.DB(c).Preload("Event").Preload("Winners.Athlete.Color"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, award)
}

// CreateAward creates an award
// @Summary Create an award
// @Tags Awards
// @Accept json
// @Produce json
// @Param award body AwardRequest true "Award"
// @Success 201 {object} models.Award
// @Failure 400 {object} response.ErrorResponse
// @Router /awards [post]
// @Security Bearer
func CreateAward(c *gin.Context) {
	var req AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !eventExists(c, req.EventID) {
		return
	}

	award := models.Award{
		Name:        req.Name,
		Description: req.Description,
		EventID:     normalizeID(req.EventID),
	}
	if err := common.DB(c).Create(&award).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionCreate, "award", award.ID, award.Name)
	c.JSON(http.StatusCreated, award)
}

// UpdateAward replaces an award's details
// @Summary Update an award
// @Tags Awards
// @Accept json
// @Produce json
// @Param id path string true "Award ID"
// @Param award body AwardRequest true "Award"
// @Success 200 {object} models.Award
// @Failure 400,404 {object} response.ErrorResponse
// @Router /awards/{id} [put]
// @Security Bearer
func UpdateAward(c *gin.Context) {
	var req AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	award, ok := findAward(c, common.DB(c))
	if !ok {
		return
	}
	if !eventExists(c, req.EventID) {
		return
	}

	award.Name = req.Name
	award.Description = req.Description
	award.EventID = normalizeID(req.EventID)
	if err := common.DB(c).Model(award).Select("name", "description", "event_id").Updates(award).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "award", award.ID, award.Name)
	c.JSON(http.StatusOK, award)
}

// DeleteAward removes an award and its winners
// @Summary Delete an award
// @Tags Awards
// @Param id path string true "Award ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /awards/{id} [delete]
// @Security Bearer
func DeleteAward(c *gin.Context) {
	award, ok := findAward(c, common.DB(c))
	if !ok {
		return
	}

	err := common.DB(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("award_id = ?", award.ID).Delete(&models.AwardWinner{}).Error; err != nil {
			return err
		}
		return tx.Delete(award).Error
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionDelete, "award", award.ID, award.Name)
	c.Status(http.StatusNoContent)
}

// AddWinner grants an award to an athlete
// @Summary Add an award winner
// @Tags Awards
// @Accept json
// @Produce json
// @Param id path string true "Award ID"
// @Param winner body WinnerRequest true "Winner"
// @Success 201 {object} models.AwardWinner
// @Failure 400,404,409 {object} response.ErrorResponse
// @Router /awards/{id}/winners [post]
// @Security Bearer
func AddWinner(c *gin.Context) {
	var req WinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	award, ok := findAward(c, common.DB(c))
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

	winner := models.AwardWinner{AwardID: award.ID, AthleteID: athlete.ID, Note: req.Note}
	if err := common.DB(c).Create(&winner).Error; err != nil {
		if common.IsDuplicate(err) {
			response.Error(c, http.StatusConflict, ErrAlreadyWinner)
			return
		}
		common.RespondError(c, err)
		return
	}

	winner.Athlete = &athlete
	common.Audit(c, services.ActionCreate, "award_winner", winner.ID, athlete.StudentCode)
	c.JSON(http.StatusCreated, winner)
}

// RemoveWinner takes an award back from an athlete
// @Summary Remove an award winner
// @Tags Awards
// @Param id path string true "Award ID"
// @Param winner_id path string true "Winner ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /awards/{id}/winners/{winner_id} [delete]
// @Security Bearer
func RemoveWinner(c *gin.Context) {
	result := common.DB(c).
		Where("id = ? AND award_id = ?", c.Param("winner_id"), c.Param("id")).
		Delete(&models.AwardWinner{})
	if result.Error != nil {
		common.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrWinnerNotFound)
		return
	}

	common.Audit(c, services.ActionDelete, "award_winner", c.Param("winner_id"), "")
	c.Status(http.StatusNoContent)
}

func findAward(c *gin.Context, db *gorm.DB) (*models.Award, bool) {
	var award models.Award
	if err := db.First(&award, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrAwardNotFound)
			return nil, false
		}
		response.ServerError(c, err)
		return nil, false
	}
	return &award, true
}

func eventExists(c *gin.Context, eventID *string) bool {
	if normalizeID(eventID) == nil {
		return true
	}
	var count int64
	if err := common.DB(c).Model(&models.Event{}).Where("id = ?", *eventID).Count(&count).Error; err != nil {
		response.ServerError(c, err)
		return false
	}
	if count == 0 {
		response.Error(c, http.StatusBadRequest, ErrEventNotFound)
		return false
	}
	return true
}

func normalizeID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
