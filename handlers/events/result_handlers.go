package events

import (
	"fmt"
	"net/http"

	"sportsday/handlers/common"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GetResults lists the results of an event by rank
// @Summary Get event results
// @Tags Results
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} models.EventResult
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/results [get]
func GetResults(c *gin.Context) {
	event, ok := findEvent(c, common.DB(c))
	if !ok {
		return
	}

	results, err := services.ListEventResults(common.DB(c), event.ID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// RecordResults replaces the results of an event and moves the points between colors
// @Summary Record event results
// @Description Previous results are replaced; the event becomes COMPLETED
// @Tags Results
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param results body ResultsRequest true "Ranked results"
// @Success 200 {array} models.EventResult
// @Failure 400,404 {object} response.ErrorResponse
// @Router /events/{id}/results [put]
// @Security Bearer
func RecordResults(c *gin.Context) {
	var req ResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	eventID := c.Param("id")
	results, err := services.RecordEventResults(common.DB(c), eventID, req.Results)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionRecordResults, "event", eventID, fmt.Sprintf("%d results", len(results)))
	c.JSON(http.StatusOK, results)
}

// ClearResults removes the results of an event and takes their points back
// @Summary Clear event results
// @Tags Results
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/results [delete]
// @Security Bearer
func ClearResults(c *gin.Context) {
	eventID := c.Param("id")
	if err := services.ClearEventResults(common.DB(c), eventID); err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionClearResults, "event", eventID, "")
	response.Message(c, http.StatusOK, MsgResultsCleared)
}

// ExportResults downloads the results of an event as a spreadsheet
// @Summary Export event results
// @Tags Results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Event ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/results/export [get]
func ExportResults(c *gin.Context) {
	event, ok := findEvent(c, common.DB(c))
	if !ok {
		return
	}

	results, err := services.ListEventResults(common.DB(c), event.ID)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	f, err := services.ExportEventResults(*event, results)
	if err != nil {
		log.WithError(err).WithField("event_id", event.ID).Error("results export failed")
		response.Error(c, http.StatusInternalServerError, ErrExportFailed)
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="results-%s.xlsx"`, event.ID))
	if err := f.Write(c.Writer); err != nil {
		log.WithError(err).Error("failed to stream results export")
	}
}
