package database

import (
	"context"
	"time"

	"sportsday/config"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// REDIS is nil when no redis host is configured; callers treat the cache as optional
var REDIS *redis.Client

// InitRedis connects to redis when REDIS_HOST is set
func InitRedis() {
	cfg := config.Current
	if cfg.RedisHost == "" {
		log.Warn("REDIS_HOST not set, caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis unreachable, caching disabled")
		client.Close()
		return
	}

	REDIS = client
	log.Info("Connected to redis")
}
