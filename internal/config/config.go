package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// EmailConfig holds SMTP settings for intake notifications. When
// Enabled is false the notifier logs instead of sending, which is the
// development default.
type EmailConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Username string
	Password string
	From     string
	// IntakeInbox receives a notification for every new submission.
	IntakeInbox string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL     string
	JWTSecret       string
	Port            string
	RateLimitIntake RateLimitConfig
	TokenTTL        time.Duration
	PhoneRegion     string
	Email           EmailConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		Port:        getEnv("PORT", "8080"),
		TokenTTL:    parseDuration(getEnv("JWT_TTL", "24h")),
		PhoneRegion: getEnv("PHONE_REGION", "US"),
		Email: EmailConfig{
			Enabled:     getEnv("SMTP_ENABLED", "false") == "true",
			Host:        getEnv("SMTP_HOST", "localhost"),
			Port:        getEnv("SMTP_PORT", "587"),
			Username:    os.Getenv("SMTP_USERNAME"),
			Password:    os.Getenv("SMTP_PASSWORD"),
			From:        getEnv("SMTP_FROM", "no-reply@charterpoint.example"),
			IntakeInbox: getEnv("INTAKE_INBOX", "quotes@charterpoint.example"),
		},
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_INTAKE", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_INTAKE value: %w", err)
	}
	cfg.RateLimitIntake = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
