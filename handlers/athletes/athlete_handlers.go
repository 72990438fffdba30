package athletes

import (
	"errors"
	"net/http"
	"strings"

	"sportsday/handlers/common"
	"sportsday/middleware"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/permissions"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllAthletes lists athletes with optional color, major and name filters
// @Summary Get all athletes
// @Tags Athletes
// @Produce json
// @Param color_id query string false "Color filter"
// @Param major_id query string false "Major filter"
// @Param search query string false "Name, nickname or student code"
// @Success 200 {array} models.Athlete
// @Router /athletes [get]
func GetAllAthletes(c *gin.Context) {
	query := common.DB(c).Preload("Major").Preload("Color")

	if colorID := c.Query("color_id"); colorID != "" {
		query = query.Where("color_id = ?", colorID)
	}
	if majorID := c.Query("major_id"); majorID != "" {
		query = query.Where("major_id = ?", majorID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(nickname) LIKE ? OR LOWER(student_code) LIKE ?",
			like, like, like, like,
		)
	}

	var athletes []models.Athlete
	if err := query.Order("student_code ASC").Find(&athletes).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, athletes)
}

// GetAthlete returns one athlete with major and color
// @Summary Get an athlete
// @Tags Athletes
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} models.Athlete
// @Failure 404 {object} response.ErrorResponse
// @Router /athletes/{id} [get]
func GetAthlete(c *gin.Context) {
	athlete, ok := findAthlete(c, common.DB(c).Preload("Major").Preload("Color"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, athlete)
}

// CreateAthlete registers a new athlete
// @Summary Create an athlete
// @Description Team managers may only create athletes of their own color
// @Tags Athletes
// @Accept json
// @Produce json
// @Param athlete body AthleteRequest true "Athlete"
// @Success 201 {object} models.Athlete
// @Failure 400,403,409 {object} response.ErrorResponse
// @Router /athletes [post]
// @Security Bearer
func CreateAthlete(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req AthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !permissions.CanManageColor(user, req.ColorID) {
		response.Error(c, http.StatusForbidden, ErrNotYourColor)
		return
	}
	if !validateReferences(c, req) {
		return
	}

	athlete := models.Athlete{}
	applyRequest(&athlete, req)
	if err := common.DB(c).Create(&athlete).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionCreate, "athlete", athlete.ID, athlete.StudentCode)
	c.JSON(http.StatusCreated, athlete)
}

// UpdateAthlete replaces an athlete's details
// @Summary Update an athlete
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param athlete body AthleteRequest true "Athlete"
// @Success 200 {object} models.Athlete
// @Failure 400,403,404 {object} response.ErrorResponse
// @Router /athletes/{id} [put]
// @Security Bearer
func UpdateAthlete(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req AthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	athlete, ok := findAthlete(c, common.DB(c))
	if !ok {
		return
	}
	// A team manager can neither edit another color's athlete nor move one away from their color
	if !permissions.CanManageColor(user, athlete.ColorID) || !permissions.CanManageColor(user, req.ColorID) {
		response.Error(c, http.StatusForbidden, ErrNotYourColor)
		return
	}
	if !validateReferences(c, req) {
		return
	}

	applyRequest(athlete, req)
	athlete.Major = nil
	athlete.Color = nil
	if err := common.DB(c).Save(athlete).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "athlete", athlete.ID, athlete.StudentCode)
	c.JSON(http.StatusOK, athlete)
}

// DeleteAthlete removes an athlete and their registrations
// @Summary Delete an athlete
// @Tags Athletes
// @Param id path string true "Athlete ID"
// @Success 204 "No Content"
// @Failure 403,404,409 {object} response.ErrorResponse
// @Router /athletes/{id} [delete]
// @Security Bearer
func DeleteAthlete(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	athlete, ok := findAthlete(c, common.DB(c))
	if !ok {
		return
	}
	if !permissions.CanManageColor(user, athlete.ColorID) {
		response.Error(c, http.StatusForbidden, ErrNotYourColor)
		return
	}

	err = common.DB(c).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.EventResult{}, &models.AwardWinner{}, &models.Vote{}} {
			var count int64
			if err := tx.Model(model).Where("athlete_id = ?", athlete.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errAthleteInUse
			}
		}

		for _, model := range []interface{}{&models.EventRegistration{}, &models.MatchParticipant{}, &models.AthleteVoteSummary{}} {
			if err := tx.Where("athlete_id = ?", athlete.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(athlete).Error
	})
	if errors.Is(err, errAthleteInUse) {
		response.Error(c, http.StatusConflict, ErrAthleteInUse)
		return
	}
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionDelete, "athlete", athlete.ID, athlete.StudentCode)
	c.Status(http.StatusNoContent)
}

var errAthleteInUse = errors.New("athlete has results, awards or votes")

func findAthlete(c *gin.Context, db *gorm.DB) (*models.Athlete, bool) {
	var athlete models.Athlete
	if err := db.First(&athlete, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrAthleteNotFound)
			return nil, false
		}
		response.ServerError(c, err)
		return nil, false
	}
	return &athlete, true
}

// validateReferences checks the major and color of a request exist
func validateReferences(c *gin.Context, req AthleteRequest) bool {
	db := common.DB(c)

	var count int64
	if err := db.Model(&models.Major{}).Where("id = ?", req.MajorID).Count(&count).Error; err != nil {
		response.ServerError(c, err)
		return false
	}
	if count == 0 {
		response.Error(c, http.StatusBadRequest, ErrMajorNotFound)
		return false
	}

	if err := db.Model(&models.Color{}).Where("id = ?", req.ColorID).Count(&count).Error; err != nil {
		response.ServerError(c, err)
		return false
	}
	if count == 0 {
		response.Error(c, http.StatusBadRequest, ErrColorNotFound)
		return false
	}
	return true
}

func applyRequest(athlete *models.Athlete, req AthleteRequest) {
	athlete.StudentCode = strings.TrimSpace(req.StudentCode)
	athlete.FirstName = strings.TrimSpace(req.FirstName)
	athlete.LastName = strings.TrimSpace(req.LastName)
	athlete.Nickname = strings.TrimSpace(req.Nickname)
	athlete.Gender = req.Gender
	athlete.PhotoURL = req.PhotoURL
	athlete.MajorID = req.MajorID
	athlete.ColorID = req.ColorID
}
