package colors

import (
	"errors"
	"net/http"
	"strings"

	"sportsday/handlers/common"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllColors lists the colors ordered by total score
// @Summary Get all colors
// @Tags Colors
// @Produce json
// @Success 200 {array} models.Color
// @Router /colors [get]
func GetAllColors(c *gin.Context) {
	var colors []models.Color
	if err := common.DB(c).Order("total_score DESC").Order("name ASC").Find(&colors).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

// GetColor returns a color with its majors and athlete count
// @Summary Get a color
// @Tags Colors
// @Produce json
// @Param id path string true "Color ID"
// @Success 200 {object} ColorDetail
// @Failure 404 {object} response.ErrorResponse
// @Router /colors/{id} [get]
func GetColor(c *gin.Context) {
	db := common.DB(c)

	var color models.Color
	if err := db.Preload("Majors").First(&color, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrColorNotFound)
			return
		}
		response.ServerError(c, err)
		return
	}

	var athletes int64
	if err := db.Model(&models.Athlete{}).Where("color_id = ?", color.ID).Count(&athletes).Error; err != nil {
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, ColorDetail{
		ID:           color.ID,
		Name:         color.Name,
		HexCode:      color.HexCode,
		TotalScore:   color.TotalScore,
		AthleteCount: athletes,
		Majors:       color.Majors,
	})
}

// CreateColor creates a new color with a zero score
// @Summary Create a color
// @Tags Colors
// @Accept json
// @Produce json
// @Param color body CreateColorRequest true "Color to create"
// @Success 201 {object} models.Color
// @Failure 400,409 {object} response.ErrorResponse
// @Router /colors [post]
// @Security Bearer
func CreateColor(c *gin.Context) {
	var req CreateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	color := models.Color{
		Name:    strings.TrimSpace(req.Name),
		HexCode: strings.ToUpper(req.HexCode),
	}
	if err := common.DB(c).Create(&color).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionCreate, "color", color.ID, color.Name)
	c.JSON(http.StatusCreated, color)
}

// UpdateColor renames or recolors a color
// @Summary Update a color
// @Tags Colors
// @Accept json
// @Produce json
// @Param id path string true "Color ID"
// @Param color body UpdateColorRequest true "Fields to update"
// @Success 200 {object} models.Color
// @Failure 400,404 {object} response.ErrorResponse
// @Router /colors/{id} [put]
// @Security Bearer
func UpdateColor(c *gin.Context) {
	var req UpdateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	var color models.Color
	if err := common.DB(c).First(&color, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrColorNotFound)
			return
		}
		response.ServerError(c, err)
		return
	}

	if req.Name != "" {
		color.Name = strings.TrimSpace(req.Name)
	}
	if req.HexCode != "" {
		color.HexCode = strings.ToUpper(req.HexCode)
	}
	if err := common.DB(c).Model(&color).Select("name", "hex_code").Updates(&color).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	services.InvalidateScoreboard(c.Request.Context())
	common.Audit(c, services.ActionUpdate, "color", color.ID, color.Name)
	c.JSON(http.StatusOK, color)
}

// DeleteColor deletes a color that no athlete or result refers to
// @Summary Delete a color
// @Tags Colors
// @Param id path string true "Color ID"
// @Success 204 "No Content"
// @Failure 404,409 {object} response.ErrorResponse
// @Router /colors/{id} [delete]
// @Security Bearer
func DeleteColor(c *gin.Context) {
	colorID := c.Param("id")
	db := common.DB(c)

	var inUse int64
	for _, model := range []interface{}{&models.Athlete{}, &models.EventResult{}} {
		var count int64
		if err := db.Model(model).Where("color_id = ?", colorID).Count(&count).Error; err != nil {
			response.ServerError(c, err)
			return
		}
		inUse += count
	}
	if inUse > 0 {
		response.Error(c, http.StatusConflict, ErrColorInUse)
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Major{}).Where("color_id = ?", colorID).Update("color_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Color{}, "id = ?", colorID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrColorNotFound)
			return
		}
		common.RespondError(c, err)
		return
	}

	services.InvalidateScoreboard(c.Request.Context())
	common.Audit(c, services.ActionDelete, "color", colorID, "")
	c.Status(http.StatusNoContent)
}
