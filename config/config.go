package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "configs/config.yaml"

type Config struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	// Job feed
	JobsSourceURL      string `yaml:"jobs_source_url"`
	JobsSourceTimeoutS int    `yaml:"jobs_source_timeout_seconds"` // 0 = no timeout
	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`
	// Redis Configuration (rate limiter store)
	RedisURL      string `yaml:"redis_url"`
	RedisPassword string `yaml:"redis_password"`
	// Rate Limiting Configuration
	RateLimitWindowSeconds int `yaml:"rate_limit_window_seconds"`
	RateLimitThreshold     int `yaml:"rate_limit_threshold"`
}

// JobsSourceTimeout returns the retrieval timeout, zero when none is enforced.
func (c *Config) JobsSourceTimeout() time.Duration {
	return time.Duration(c.JobsSourceTimeoutS) * time.Second
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func LoadConfig() (*Config, error) {
	// .env is optional; ignored when absent (production)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   "8080",
		LogLevel:               "info",
		AllowedOrigins:         []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		RateLimitWindowSeconds: 60,
		RateLimitThreshold:     100,
	}

	if err := loadFile(getEnv("CONFIG_FILE", defaultConfigFile), cfg); err != nil {
		return nil, err
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.JobsSourceURL = strings.TrimSpace(getEnv("JOBS_SOURCE_URL", cfg.JobsSourceURL))
	cfg.JobsSourceTimeoutS = getEnvInt("JOBS_SOURCE_TIMEOUT", cfg.JobsSourceTimeoutS)
	if origins, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitList(origins)
	}
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RateLimitWindowSeconds = getEnvInt("RATE_LIMIT_WINDOW_SECONDS", cfg.RateLimitWindowSeconds)
	cfg.RateLimitThreshold = getEnvInt("RATE_LIMIT_THRESHOLD", cfg.RateLimitThreshold)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.JobsSourceURL == "" {
		return errors.New("config: JOBS_SOURCE_URL is required")
	}
	if c.JobsSourceTimeoutS < 0 {
		return fmt.Errorf("config: JOBS_SOURCE_TIMEOUT must not be negative, got %d", c.JobsSourceTimeoutS)
	}
	if c.RateLimitWindowSeconds <= 0 || c.RateLimitThreshold <= 0 {
		return errors.New("config: rate limit window and threshold must be positive")
	}
	return nil
}

// loadFile overlays a YAML file onto cfg. A missing file is not an error.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
