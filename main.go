package main

import (
	"time"

	"sportsday/config"
	"sportsday/database"
	_ "sportsday/docs"
	"sportsday/logger"
	"sportsday/middleware"
	v1 "sportsday/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const insecureJWTSecret = "change-me"

// @title Sports Day API
// @version 1.0
// @description Colors, athletes, events, results, brackets and popular votes of a university sports day.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}
	cfg := config.Current
	logger.Init(cfg.LogLevel, cfg.IsProduction())

	if cfg.IsProduction() {
		if cfg.JWTSecret == insecureJWTSecret {
			log.Fatal("JWT_SECRET must be set in production")
		}
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	database.InitRedis()
	middleware.UpdateSystemMetrics(15 * time.Second)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.Register(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.WithField("port", cfg.Port).Info("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
