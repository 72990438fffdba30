package majors

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

const (
	ErrMajorNotFound = "ไม่พบสาขาวิชา"
	ErrColorNotFound = "ไม่พบสีที่ระบุ"
	ErrMajorInUse    = "ไม่สามารถลบสาขาวิชาที่มีนักกีฬาอยู่"
)

type MajorRequest struct {
	Name    string  `json:"name" binding:"required,max=150"`
	ColorID *string `json:"colorId"`
}

// RegisterRoutes registers all routes related to majors
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/majors", GetAllMajors)
	r.GET("/majors/:id", GetMajor)

	majors := r.Group("/majors")
	majors.Use(middleware.AuthMiddleware(), middleware.RequireRoles(permissions.ADMIN))
	{
		majors.POST("", CreateMajor)
		majors.PUT("/:id", UpdateMajor)
		majors.DELETE("/:id", DeleteMajor)
	}
}

// @Summary Get all majors
// @Tags Majors
// @Produce json
// @Param color_id query string false "Color filter"
// @Success 200 {array} models.Major
// @Router /majors [get]
func GetAllMajors(c *gin.Context) {
	query := common.DB(c).Preload("Color").Order("name ASC")
	if colorID := c.Query("color_id"); colorID != "" {
		query = query.Where("color_id = ?", colorID)
	}

	var majors []models.Major
	if err := query.Find(&majors).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, majors)
}

// @Summary Get a major
// @Tags Majors
// @Produce json
// @Param id path string true "Major ID"
// @Success 200 {object} models.Major
// @Router /majors/{id} [get]
func GetMajor(c *gin.Context) {
	var major models.Major
	if err := common.DB(c).Preload("Color").First(&major, "id = ?", c.Param("id")).Error; err != nil {
		notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, major)
}

// @Summary Create a major
// @Tags Majors
// @Accept json
// @Produce json
// @Param major body MajorRequest true "Major"
// @Success 201 {object} models.Major
// @Router /majors [post]
// @Security Bearer
func CreateMajor(c *gin.Context) {
	var req MajorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !colorExists(c, req.ColorID) {
		response.Error(c, http.StatusBadRequest, ErrColorNotFound)
		return
	}

	major := models.Major{Name: strings.TrimSpace(req.Name), ColorID: normalizeID(req.ColorID)}
	if err := common.DB(c).Create(&major).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionCreate, "major", major.ID, major.Name)
	c.JSON(http.StatusCreated, major)
}

// @Summary Update a major
// @Tags Majors
// @Accept json
// @Produce json
// @Param id path string true "Major ID"
// @Param major body MajorRequest true "Major"
// @Success 200 {object} models.Major
// @Router /majors/{id} [put]
// @Security Bearer
func UpdateMajor(c *gin.Context) {
	var req MajorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !colorExists(c, req.ColorID) {
		response.Error(c, http.StatusBadRequest, ErrColorNotFound)
		return
	}

	var major models.Major
	if err := common.DB(c).First(&major, "id = ?", c.Param("id")).Error; err != nil {
		notFoundOrError(c, err)
		return
	}

	major.Name = strings.TrimSpace(req.Name)
	major.ColorID = normalizeID(req.ColorID)
	if err := common.DB(c).Model(&major).Select("name", "color_id").Updates(&major).Error; err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "major", major.ID, major.Name)
	c.JSON(http.StatusOK, major)
}

// @Summary Delete a major
// @Tags Majors
// @Param id path string true "Major ID"
// @Success 204 "No Content"
// @Router /majors/{id} [delete]
// @Security Bearer
func DeleteMajor(c *gin.Context) {
	majorID := c.Param("id")

	var athletes int64
	if err := common.DB(c).Model(&models.Athlete{}).Where("major_id = ?", majorID).Count(&athletes).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	if athletes > 0 {
		response.Error(c, http.StatusConflict, ErrMajorInUse)
		return
	}

	result := common.DB(c).Delete(&models.Major{}, "id = ?", majorID)
	if result.Error != nil {
		common.RespondError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrMajorNotFound)
		return
	}

	common.Audit(c, services.ActionDelete, "major", majorID, "")
	c.Status(http.StatusNoContent)
}

func notFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, ErrMajorNotFound)
		return
	}
	response.ServerError(c, err)
}

func normalizeID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

func colorExists(c *gin.Context, colorID *string) bool {
	if normalizeID(colorID) == nil {
		return true
	}
	var count int64
	if err := common.DB(c).Model(&models.Color{}).Where("id = ?", *colorID).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}
