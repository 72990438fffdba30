package events

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"sportsday/handlers/common"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllEvents lists events by start time
// @Summary Get all events
// @Tags Events
// @Produce json
// @Param status query string false "UPCOMING, ONGOING, COMPLETED or CANCELLED"
// @Param sport_type_id query string false "Sport type filter"
// @Success 200 {array} models.Event
// @Failure 400 {object} response.ErrorResponse
// @Router /events [get]
func GetAllEvents(c *gin.Context) {
	query := common.DB(c).Preload("SportType")

	if status := c.Query("status"); status != "" {
		if !models.IsValidEventStatus(status) {
			response.Error(c, http.StatusBadRequest, ErrInvalidStatus)
			return
		}
		query = query.Where("status = ?", status)
	}
	if sportTypeID := c.Query("sport_type_id"); sportTypeID != "" {
		query = query.Where("sport_type_id = ?", sportTypeID)
	}

	var events []models.Event
	if err := query.Order("start_time ASC").Find(&events).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent returns an event with its sport type and vote setting
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id} [get]
func GetEvent(c *gin.Context) {
	event, ok := findEvent(c, common.DB(c).Preload("SportType").Preload("VoteSetting"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent schedules a new event
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} response.ErrorResponse
// @Router /events [post]
// @Security Bearer
func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !validateEventRequest(c, req) {
		return
	}

	event := models.Event{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		SportTypeID: req.SportTypeID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      models.EventUpcoming,
	}
	if err := common.DB(c).Create(&event).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionCreate, "event", event.ID, event.Name)
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent replaces an event's details; its status is changed through UpdateEventStatus
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body EventRequest true "Event"
// @Success 200 {object} models.Event
// @Failure 400,404 {object} response.ErrorResponse
// @Router /events/{id} [put]
// @Security Bearer
func UpdateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	event, ok := findEvent(c, common.DB(c))
	if !ok {
		return
	}
	if !validateEventRequest(c, req) {
		return
	}

	event.Name = req.Name
	event.Description = req.Description
	event.Location = req.Location
	event.SportTypeID = req.SportTypeID
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	if err := common.DB(c).Model(event).
		Select("name", "description", "location", "sport_type_id", "start_time", "end_time").
		Updates(event).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "event", event.ID, event.Name)
	c.JSON(http.StatusOK, event)
}

// UpdateEventStatus moves an event to another status
// @Summary Change an event's status
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} models.Event
// @Failure 400,404 {object} response.ErrorResponse
// @Router /events/{id}/status [patch]
// @Security Bearer
func UpdateEventStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	event, ok := findEvent(c, common.DB(c))
	if !ok {
		return
	}

	event.Status = req.Status
	if req.Status == models.EventCompleted && event.EndTime == nil {
		now := time.Now()
		event.EndTime = &now
	}
	if err := common.DB(c).Model(event).Select("status", "end_time").Updates(event).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "event", event.ID, fmt.Sprintf("status=%s", req.Status))
	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event with its registrations, results, matches and votes
// @Summary Delete an event
// @Description Points granted by the event's results are taken back from the colors
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id} [delete]
// @Security Bearer
func DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")
	if err := services.DeleteEvent(common.DB(c), eventID); err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionDelete, "event", eventID, "")
	c.Status(http.StatusNoContent)
}

func findEvent(c *gin.Context, db *gorm.DB) (*models.Event, bool) {
	var event models.Event
	if err := db.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrEventNotFound)
			return nil, false
		}
		response.ServerError(c, err)
		return nil, false
	}
	return &event, true
}

func validateEventRequest(c *gin.Context, req EventRequest) bool {
	if req.EndTime != nil && !req.EndTime.After(req.StartTime) {
		response.Error(c, http.StatusBadRequest, ErrInvalidTimeRange)
		return false
	}

	var count int64
	if err := common.DB(c).Model(&models.SportType{}).Where("id = ?", req.SportTypeID).Count(&count).Error; err != nil {
		response.ServerError(c, err)
		return false
	}
	if count == 0 {
		response.Error(c, http.StatusBadRequest, ErrSportTypeNotFound)
		return false
	}
	return true
}
