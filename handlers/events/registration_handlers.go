package events

import (
	"errors"
	"net/http"

	"sportsday/handlers/common"
	"sportsday/middleware"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/permissions"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetRegistrations lists the athletes enrolled in an event
// @Summary Get event registrations
// @Tags Registrations
// @Produce json
// @Param id path string true "Event ID"
// @Param color_id query string false "Color filter"
// @Success 200 {array} models.EventRegistration
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/registrations [get]
func GetRegistrations(c *gin.Context) {
	event, ok := findEvent(c, common.DB(c))
	if !ok {
		return
	}

	query := common.DB(c).Preload("Athlete").Preload("Color").Where("event_id = ?", event.ID)
	if colorID := c.Query("color_id"); colorID != "" {
		query = query.Where("color_id = ?", colorID)
	}

	var registrations []models.EventRegistration
	if err := query.Order("created_at ASC").Find(&registrations).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, registrations)
}

// CreateRegistration enrolls an athlete in an event for the athlete's color
// @Summary Register an athlete
// @Description Each color may enroll at most the sport type's maximum number of participants
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param registration body RegistrationRequest true "Athlete"
// @Success 201 {object} models.EventRegistration
// @Failure 400,403,404,409 {object} response.ErrorResponse
// @Router /events/{id}/registrations [post]
// @Security Bearer
func CreateRegistration(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	event, ok := findEvent(c, common.DB(c).Preload("SportType"))
	if !ok {
		return
	}
	if event.Status == models.EventCompleted || event.Status == models.EventCancelled {
		response.Error(c, http.StatusBadRequest, ErrEventClosed)
		return
	}

	var athlete models.Athlete
	if err := common.DB(c).First(&athlete, "id = ?", req.AthleteID).Error; err != nil {
		common.RespondError(c, translateNotFound(err, services.ErrAthleteNotFound))
		return
	}
	if !permissions.CanManageColor(user, athlete.ColorID) {
		response.Error(c, http.StatusForbidden, ErrNotYourColor)
		return
	}

	registration := models.EventRegistration{
		EventID:   event.ID,
		AthleteID: athlete.ID,
		ColorID:   athlete.ColorID,
	}
	err = common.DB(c).Transaction(func(tx *gorm.DB) error {
		if event.SportType != nil && event.SportType.MaxParticipants > 0 {
			var enrolled int64
			if err := tx.Model(&models.EventRegistration{}).
				Where("event_id = ? AND color_id = ?", event.ID, athlete.ColorID).
				Count(&enrolled).Error; err != nil {
				return err
			}
			if int(enrolled) >= event.SportType.MaxParticipants {
				return errEventFull
			}
		}
		return tx.Create(&registration).Error
	})
	switch {
	case errors.Is(err, errEventFull):
		response.Error(c, http.StatusBadRequest, ErrEventFull)
		return
	case err != nil && common.IsDuplicate(err):
		response.Error(c, http.StatusConflict, ErrAlreadyRegistered)
		return
	case err != nil:
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionCreate, "registration", registration.ID, athlete.StudentCode)
	c.JSON(http.StatusCreated, registration)
}

// DeleteRegistration withdraws an athlete from an event
// @Summary Remove a registration
// @Tags Registrations
// @Param id path string true "Event ID"
// @Param registration_id path string true "Registration ID"
// @Success 204 "No Content"
// @Failure 403,404 {object} response.ErrorResponse
// @Router /events/{id}/registrations/{registration_id} [delete]
// @Security Bearer
func DeleteRegistration(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var registration models.EventRegistration
	if err := common.DB(c).
		First(&registration, "id = ? AND event_id = ?", c.Param("registration_id"), c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrRegistrationNotFound)
			return
		}
		response.ServerError(c, err)
		return
	}
	if !permissions.CanManageColor(user, registration.ColorID) {
		response.Error(c, http.StatusForbidden, ErrNotYourColor)
		return
	}

	if err := common.DB(c).Delete(&registration).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionDelete, "registration", registration.ID, registration.AthleteID)
	c.Status(http.StatusNoContent)
}

var errEventFull = errors.New("color reached the participant limit")

// translateNotFound swaps gorm's not-found error for a domain one
func translateNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
