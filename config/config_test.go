package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 10, cfg.RateLimit.VoteBurst)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	previous := Current
	t.Cleanup(func() { Current = previous })

	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("RATE_LIMIT_VOTE_RATE", "5")
	t.Setenv("SCOREBOARD_CACHE_TTL", "1m")

	require.NoError(t, Load())
	assert.True(t, Current.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, Current.AllowedOrigins)
	assert.Equal(t, 5, Current.RateLimit.VoteRate)
	assert.Equal(t, time.Minute, Current.ScoreboardCacheTTL)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Default()
	cfg.PostgresPassword = "secret"

	assert.Equal(t,
		"host=localhost port=5432 user=postgres dbname=sportsday password=secret sslmode=disable TimeZone=Asia/Bangkok",
		cfg.PostgresDSN())
}
