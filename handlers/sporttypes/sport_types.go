package sporttypes

import (
	"errors"
	"net/http"

	"sportsday/handlers/common"
	"sportsday/middleware"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ErrSportTypeNotFound = "ไม่พบประเภทกีฬา"
	ErrSportTypeInUse    = "ไม่สามารถลบประเภทกีฬาที่มีรายการแข่งขันอยู่"
)

// SportTypeRequest model for creating or replacing a sport type
type SportTypeRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Category        string `json:"category" binding:"required,oneof=INDIVIDUAL TEAM"`
	MaxParticipants int    `json:"maxParticipants" binding:"required,min=1,max=500"`
	Description     string `json:"description" binding:"max=255"`
}

// RegisterRoutes registers all routes related to sport types
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/sport-types", GetAllSportTypes)
	r.GET("/sport-types/:id", GetSportType)

	sportTypes := r.Group("/sport-types")
	sportTypes.Use(middleware.AuthMiddleware(), middleware.RequireStaff())
	{
		sportTypes.POST("", CreateSportType)
		sportTypes.PUT("/:id", UpdateSportType)
		sportTypes.DELETE("/:id", DeleteSportType)
	}
}

// GetAllSportTypes lists sport types, optionally by category
// @Summary Get all sport types
// @Tags SportTypes
// @Produce json
// @Param category query string false "INDIVIDUAL or TEAM"
// @Success 200 {array} models.SportType
// @Router /sport-types [get]
func GetAllSportTypes(c *gin.Context) {
	query := common.DB(c).Order("name ASC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var sportTypes []models.SportType
	if err := query.Find(&sportTypes).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, sportTypes)
}

// GetSportType returns one sport type
// @Summary Get a sport type
// @Tags SportTypes
// @Produce json
// @Param id path string true "Sport type ID"
// @Success 200 {object} models.SportType
// @Failure 404 {object} response.ErrorResponse
// @Router /sport-types/{id} [get]
func GetSportType(c *gin.Context) {
	var sportType models.SportType
	if err := common.DB(c).First(&sportType, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrSportTypeNotFound)
			return
		}
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, sportType)
}

// CreateSportType creates a sport type
// @Summary Create a sport type
// @Tags SportTypes
// @Accept json
// @Produce json
// @Param sportType body SportTypeRequest true "Sport type"
// @Success 201 {object} models.SportType
// @Router /sport-types [post]
// @Security Bearer
func CreateSportType(c *gin.Context) {
	var req SportTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	sportType := models.SportType{
		Name:            req.Name,
		Category:        req.Category,
		MaxParticipants: req.MaxParticipants,
		Description:     req.Description,
	}
	if err := common.DB(c).Create(&sportType).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionCreate, "sport_type", sportType.ID, sportType.Name)
	c.JSON(http.StatusCreated, sportType)
}

// UpdateSportType replaces a sport type
// @Summary Update a sport type
// @Tags SportTypes
// @Accept json
// @Produce json
// @Param id path string true "Sport type ID"
// @Param sportType body SportTypeRequest true "Sport type"
// @Success 200 {object} models.SportType
// @Router /sport-types/{id} [put]
// @Security Bearer
func UpdateSportType(c *gin.Context) {
	var req SportTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	var sportType models.SportType
	if err := common.DB(c).First(&sportType, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrSportTypeNotFound)
			return
		}
		response.ServerError(c, err)
		return
	}

	sportType.Name = req.Name
	sportType.Category = req.Category
	sportType.MaxParticipants = req.MaxParticipants
	sportType.Description = req.Description
	if err := common.DB(c).Save(&sportType).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "sport_type", sportType.ID, sportType.Name)
	c.JSON(http.StatusOK, sportType)
}

// DeleteSportType deletes a sport type without events
// @Summary Delete a sport type
// @Tags SportTypes
// @Param id path string true "Sport type ID"
// @Success 204 "No Content"
// @Failure 404,409 {object} response.ErrorResponse
// @Router /sport-types/{id} [delete]
// @Security Bearer
func DeleteSportType(c *gin.Context) {
	sportTypeID := c.Param("id")

	var events int64
	if err := common.DB(c).Model(&models.Event{}).Where("sport_type_id = ?", sportTypeID).Count(&events).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	if events > 0 {
		response.Error(c, http.StatusConflict, ErrSportTypeInUse)
		return
	}

	result := common.DB(c).Delete(&models.SportType{}, "id = ?", sportTypeID)
	if result.Error != nil {
		common.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrSportTypeNotFound)
		return
	}

	common.Audit(c, services.ActionDelete, "sport_type", sportTypeID, "")
	c.Status(http.StatusNoContent)
}
