package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting read from the environment (and the optional .env file)
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBDriver         string `env:"DB_DRIVER" envDefault:"postgres"`
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"sportsday"`
	PostgresTimeZone string `env:"POSTGRES_TIMEZONE" envDefault:"Asia/Bangkok"`
	SQLitePath       string `env:"SQLITE_PATH" envDefault:"sportsday.db"`

	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	JWTSecret       string        `env:"JWT_SECRET" envDefault:"change-me"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	SecureCookies   bool          `env:"SECURE_COOKIES" envDefault:"false"`
	DefaultPassword string        `env:"DEFAULT_PASSWORD"`

	ClientURL      string   `env:"CLIENT_URL" envDefault:"http://localhost:3000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	ScoreboardCacheTTL time.Duration `env:"SCOREBOARD_CACHE_TTL" envDefault:"10s"`

	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

// Current is the configuration loaded at startup
var Current = Default()

// Default returns the configuration with every default applied and no environment read
func Default() Config {
	var cfg Config
	// Parsing an empty environment only applies the envDefault tags
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// Load reads the .env file when present and parses the environment into Current
func Load() error {
	// A missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}
	Current = cfg
	return nil
}

// IsProduction reports whether the application runs in production mode
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// PostgresDSN builds the connection string for the postgres driver
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresDB, c.PostgresPassword, c.PostgresTimeZone)
}
