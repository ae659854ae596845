// -----------------------------------------------------------------------------
// Config Package
// -----------------------------------------------------------------------------
// Central, env-driven configuration. Missing variables fall back to
// development defaults with a log line, so a bare `go run` works
// against a local MySQL and Redis.
// -----------------------------------------------------------------------------

package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config carries every tunable the application reads at startup.
type Config struct {
	App struct {
		Name string
		Env  string // development, production, test
	}

	Server struct {
		Port string
	}

	DB struct {
		DSN             string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
	}

	JWT struct {
		Secret     string
		Issuer     string
		Expiration time.Duration
	}

	Redis struct {
		Host     string
		Port     int
		Password string
		DB       int
	}

	Cache struct {
		Enabled bool
		Prefix  string
	}

	RateLimit struct {
		Enabled     bool
		MaxRequests int
		Window      time.Duration
	}
}

// Load reads the configuration from the environment.
func Load() *Config {
	cfg := &Config{}

	cfg.App.Name = getEnv("APP_NAME", "railway-reservation")
	cfg.App.Env = getEnv("APP_ENV", "development")

	cfg.Server.Port = getEnv("SERVER_PORT", "8080")

	cfg.DB.DSN = getEnv("DB_DSN", "railway:railway@tcp(127.0.0.1:3306)/railway?parseTime=true")
	cfg.DB.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 25)
	cfg.DB.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 25)
	cfg.DB.ConnMaxLifetime = getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute)

	cfg.JWT.Secret = getEnv("JWT_SECRET", "railway-dev-secret-change-me")
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", cfg.App.Name)
	cfg.JWT.Expiration = getEnvDuration("JWT_EXPIRATION", 1*time.Hour)

	cfg.Redis.Host = getEnv("REDIS_HOST", "127.0.0.1")
	cfg.Redis.Port = getEnvInt("REDIS_PORT", 6379)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.Cache.Enabled = getEnvBool("CACHE_ENABLED", true)
	cfg.Cache.Prefix = getEnv("CACHE_PREFIX", cfg.App.Name)

	cfg.RateLimit.Enabled = getEnvBool("RATE_LIMIT_ENABLED", true)
	cfg.RateLimit.MaxRequests = getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100)
	cfg.RateLimit.Window = getEnvDuration("RATE_LIMIT_WINDOW", 1*time.Minute)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("config: invalid integer for %s, using default %d", key, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("config: invalid boolean for %s, using default %v", key, fallback)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("config: invalid duration for %s, using default %s", key, fallback)
		return fallback
	}
	return d
}
