package dashboard

import (
	"net/http"
	"slices"

	"sportsday/config"
	"sportsday/handlers/common"
	"sportsday/models"
	"sportsday/realtime"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: checkOrigin,
}

// checkOrigin accepts same-host clients and the configured dashboard origins
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	allowed := config.Current.AllowedOrigins
	return len(allowed) == 0 || slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
}

// ScoreboardWebSocket streams scoreboard updates
// @Summary Subscribe to scoreboard updates
// @Tags Dashboard
// @Router /ws/scoreboard [get]
func ScoreboardWebSocket(c *gin.Context) {
	subscribe(c, realtime.ChannelScoreboard)
}

// EventWebSocket streams the match, result and vote updates of one event
// @Summary Subscribe to event updates
// @Tags Dashboard
// @Param id path string true "Event ID"
// @Router /ws/events/{id} [get]
func EventWebSocket(c *gin.Context) {
	var count int64
	if err := common.DB(c).Model(&models.Event{}).Where("id = ?", c.Param("id")).Count(&count).Error; err != nil {
		response.ServerError(c, err)
		return
	}
	if count == 0 {
		response.Error(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	subscribe(c, realtime.EventChannel(c.Param("id")))
}

// subscribe upgrades the connection and keeps it registered until the client goes away
func subscribe(c *gin.Context, channel string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Debug("websocket upgrade failed")
		return
	}

	realtime.RegisterClient(channel, conn)
	defer func() {
		realtime.UnregisterClient(channel, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
