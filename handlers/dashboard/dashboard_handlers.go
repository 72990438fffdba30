package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"sportsday/handlers/common"
	"sportsday/models"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const ErrExportFailed = "ไม่สามารถสร้างไฟล์ส่งออกได้"

// Stats summarizes the sports day for the organizers' dashboard
type Stats struct {
	Colors         int64            `json:"colors"`
	Majors         int64            `json:"majors"`
	Athletes       int64            `json:"athletes"`
	Registrations  int64            `json:"registrations"`
	EventsByStatus map[string]int64 `json:"eventsByStatus"`
	LiveMatches    int64            `json:"liveMatches"`
	ValidVotes     int64            `json:"validVotes"`
	Awards         int64            `json:"awards"`
}

type statusCount struct {
	Status string
	Count  int64
}

// GetScoreboard returns the overall standings
// @Summary Get the scoreboard
// @Tags Dashboard
// @Produce json
// @Success 200 {array} services.ScoreboardEntry
// @Router /scoreboard [get]
func GetScoreboard(c *gin.Context) {
	entries, err := services.Scoreboard(c.Request.Context(), common.DB(c))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ExportScoreboard downloads the standings as a spreadsheet
// @Summary Export the scoreboard
// @Tags Dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /scoreboard/export [get]
func ExportScoreboard(c *gin.Context) {
	entries, err := services.ComputeScoreboard(common.DB(c))
	if err != nil {
		response.ServerError(c, err)
		return
	}

	f, err := services.ExportScoreboard(entries)
	if err != nil {
		log.WithError(err).Error("scoreboard export failed")
		response.Error(c, http.StatusInternalServerError, ErrExportFailed)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("scoreboard-%s.xlsx", time.Now().Format("20060102-1504"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Writer); err != nil {
		log.WithError(err).Error("failed to stream scoreboard export")
	}
}

// GetStats returns entity counts for the dashboard
// @Summary Get dashboard statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} Stats
// @Router /dashboard/stats [get]
// @Security Bearer
func GetStats(c *gin.Context) {
	db := common.DB(c)
	stats := Stats{EventsByStatus: map[string]int64{
		models.EventUpcoming:  0,
		models.EventOngoing:   0,
		models.EventCompleted: 0,
		models.EventCancelled: 0,
	}}

	counts := []struct {
		query  *gorm.DB
		target *int64
	}{
		{db.Model(&models.Color{}), &stats.Colors},
		{db.Model(&models.Major{}), &stats.Majors},
		{db.Model(&models.Athlete{}), &stats.Athletes},
		{db.Model(&models.EventRegistration{}), &stats.Registrations},
		{db.Model(&models.Match{}).Where("status = ?", models.MatchLive), &stats.LiveMatches},
		{db.Model(&models.Vote{}).Where("is_valid = ?", true), &stats.ValidVotes},
		{db.Model(&models.Award{}), &stats.Awards},
	}
	for _, count := range counts {
		if err := count.query.Count(count.target).Error; err != nil {
			response.ServerError(c, err)
			return
		}
	}

	var byStatus []statusCount
	if err := db.Model(&models.Event{}).Select("status, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	for _, s := range byStatus {
		stats.EventsByStatus[s.Status] = s.Count
	}

	c.JSON(http.StatusOK, stats)
}
