package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables. It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	DB     DatabaseConfig
	Redis  RedisConfig
	AWS    AWSConfig
	Worker WorkerConfig
	Admin  AdminSeedConfig
}

// DatabaseConfig contains PostgreSQL connection parameters. An empty Host
// selects the in-memory repositories instead of Postgres.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Enabled reports whether a Postgres backend is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// RedisConfig contains Redis connection parameters. An empty Host disables
// the catalog metadata cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether Redis caching is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// AWSConfig contains the Rekognition region used for image moderation. An
// empty region disables moderation.
type AWSConfig struct {
	RekognitionRegion string
}

// WorkerConfig contains interval configuration for background workers.
type WorkerConfig struct {
	CatalogSyncInterval time.Duration
	MetadataCacheTTL    time.Duration
}

// AdminSeedConfig bootstraps the first admin account when no database is
// configured.
type AdminSeedConfig struct {
	Email    string
	Password string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// AWS (image moderation)
	cfg.AWS = AWSConfig{
		RekognitionRegion: getEnv("AWS_REKOGNITION_REGION", ""),
	}

	// Admin bootstrap (only used without a database)
	cfg.Admin = AdminSeedConfig{
		Email:    getEnv("ADMIN_EMAIL", "admin@sankofamarket.com"),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}

	// Workers (durations)
	var err error
	if cfg.Worker.CatalogSyncInterval, err = parseDurationEnv("CATALOG_SYNC_INTERVAL", "5m"); err != nil {
		return nil, fmt.Errorf("invalid CATALOG_SYNC_INTERVAL: %w", err)
	}
	if cfg.Worker.MetadataCacheTTL, err = parseDurationEnv("METADATA_CACHE_TTL", "10m"); err != nil {
		return nil, fmt.Errorf("invalid METADATA_CACHE_TTL: %w", err)
	}

	if cfg.DB.Enabled() && (cfg.DB.User == "" || cfg.DB.Name == "") {
		return nil, errors.New("database configuration incomplete: ensure DB_USER and DB_NAME are set alongside DB_HOST")
	}

	// Validate JWT_SECRET
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for authentication")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a
// default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as a
// time.Duration. If the variable is empty, it falls back to the provided
// default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
