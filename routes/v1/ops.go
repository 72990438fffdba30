package v1

import (
	"context"
	"net/http"
	"time"

	"sportsday/database"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// HealthResponse reports the reachability of the backing stores
type HealthResponse struct {
	Message  string `json:"message"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// @Summary Health check
// @Description Pings the database and, when configured, redis
// @Tags Ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /ping [get]
func ping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	health := HealthResponse{Message: "pong", Database: "up", Cache: "disabled"}
	status := http.StatusOK

	if err := pingDatabase(ctx); err != nil {
		log.WithError(err).Warn("health check: database unreachable")
		health.Database = "down"
		status = http.StatusServiceUnavailable
	}
	if database.REDIS != nil {
		health.Cache = "up"
		// The cache is optional, a failure degrades without failing the check
		if err := database.REDIS.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("health check: redis unreachable")
			health.Cache = "down"
		}
	}

	c.JSON(status, health)
}

func pingDatabase(ctx context.Context) error {
	sqlDB, err := database.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// RegisterOpsRoutes registers the health check and the prometheus endpoint
func RegisterOpsRoutes(r *gin.RouterGroup) {
	r.GET("/ping", ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
