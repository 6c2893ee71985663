package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port            int
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// CORS
	AllowedOrigins []string

	// Storage
	PostgresURL string
	DBMaxConns  int
	RedisURL    string

	// Rate limiting (fixed window, disabled without Redis)
	AuthRateLimit   int
	APIRateLimit    int
	RateLimitWindow time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnvInt("PORT", 8080),
		Env:             getEnv("ENV", "development"),
		ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),

		DBMaxConns: getEnvInt("DB_MAX_CONNS", 10),
		RedisURL:   os.Getenv("REDIS_URL"),

		AuthRateLimit:   getEnvInt("AUTH_RATE_LIMIT", 10),
		APIRateLimit:    getEnvInt("API_RATE_LIMIT", 60),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"))

	var err error
	if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
		return nil, err
	}

	if cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitWindow)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// SeedConfig drives cmd/seeder.
type SeedConfig struct {
	PostgresURL   string
	Games         int
	Seasons       int
	LastSeason    int
	AdminName     string
	AdminEmail    string
	AdminPassword string
	// RandomSeed of zero means a time-based seed.
	RandomSeed uint64
}

// LoadSeed reads seeder settings. LastSeason defaults to the year of now.
func LoadSeed(now time.Time) (*SeedConfig, error) {
	cfg := &SeedConfig{
		Games:         getEnvInt("SEED_GAMES", 40),
		Seasons:       getEnvInt("SEED_SEASONS", 25),
		LastSeason:    getEnvInt("SEED_SEASON", now.Year()),
		AdminName:     getEnv("SEED_ADMIN_NAME", "Admin"),
		AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@leaderboard.local"),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "password123"),
		RandomSeed:    uint64(getEnvInt("SEED_RANDOM", 0)),
	}

	var err error
	if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
		return nil, err
	}
	if cfg.Games < 0 || cfg.Seasons < 1 {
		return nil, fmt.Errorf("SEED_GAMES must be >= 0 and SEED_SEASONS >= 1, got %d and %d", cfg.Games, cfg.Seasons)
	}
	return cfg, nil
}
