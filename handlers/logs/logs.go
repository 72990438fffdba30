package logs

import (
	"net/http"
	"strconv"

	"sportsday/handlers/common"
	"sportsday/middleware"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/permissions"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
)

// LogsPage is one page of the activity log
type LogsPage struct {
	Items []models.ActivityLog `json:"items"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/logs")
	logs.Use(middleware.AuthMiddleware(), middleware.RequireRoles(permissions.ADMIN))
	{
		logs.GET("", GetLogs)
	}
}

// GetLogs returns the activity log, newest first
// @Summary Get activity logs
// @Tags Logs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Param entity_type query string false "Entity type filter"
// @Param action query string false "Action filter"
// @Param user_id query string false "Author filter"
// @Success 200 {object} LogsPage
// @Router /logs [get]
// @Security Bearer
func GetLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := services.ActivityFilter{
		EntityType: c.Query("entity_type"),
		Action:     c.Query("action"),
		UserID:     c.Query("user_id"),
		Page:       page,
		Limit:      limit,
	}
	filter.Normalize()

	items, total, err := services.ListActivity(common.DB(c), filter)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, LogsPage{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit})
}
