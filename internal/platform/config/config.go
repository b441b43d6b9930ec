package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr                   string
	DatabaseURL            string
	JWTSecret              string
	TokenTTL               time.Duration
	Environment            string
	AllowSelfSignup        bool
	SeedSuperadminEmail    string
	SeedSuperadminPassword string
	RunMigrations          bool
	MigrationsDir          string
	RunSeed                bool
	MaxBodyBytes           int64
	RateLimitPerMinute     int
	MetricsEnabled         bool
}

func Load() Config {
	return Config{
		Addr:                   getEnv("APP_ADDR", ":8080"),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenTTL:               getEnvDuration("TOKEN_TTL", 8*time.Hour),
		Environment:            getEnv("APP_ENV", "development"),
		AllowSelfSignup:        getEnvBool("ALLOW_SELF_SIGNUP", false),
		SeedSuperadminEmail:    getEnv("SEED_SUPERADMIN_EMAIL", ""),
		SeedSuperadminPassword: getEnv("SEED_SUPERADMIN_PASSWORD", ""),
		RunMigrations:          getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir:          getEnv("MIGRATIONS_DIR", "migrations"),
		RunSeed:                getEnvBool("RUN_SEED", true),
		MaxBodyBytes:           int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:     getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:         getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.Environment == "production" {
		if c.AllowSelfSignup {
			return fmt.Errorf("ALLOW_SELF_SIGNUP must be disabled in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedSuperadminPassword) == "" {
			return fmt.Errorf("SEED_SUPERADMIN_PASSWORD must be set or RUN_SEED disabled in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}
