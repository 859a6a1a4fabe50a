package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"loan-calculator/widget"
)

// Config holds the process settings.
type Config struct {
	HTTPAddr          string        // listen address
	RedisAddr         string        // empty means in-memory cache
	CacheTTL          time.Duration // lifetime of cached engine results
	LogLevel          string
	LogFormat         string // "json" or "text"
	RateLimitCapacity int
	RateLimitWindow   time.Duration
	SessionIdle       time.Duration // idle widgets are dropped after this
	MaxSessions       int           // 0 means unbounded
	HistoryLimit      int
	LayoutFile        string
}

// LoadConfig reads .env if present, then the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found, using environment only")
	}

	cacheTTL, err := getDuration("CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	window, err := getDuration("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	idle, err := getDuration("SESSION_IDLE", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	capacity, err := getInt("RATE_LIMIT_CAPACITY", 120)
	if err != nil {
		return nil, err
	}
	history, err := getInt("HISTORY_LIMIT", 1000)
	if err != nil {
		return nil, err
	}
	maxSessions, err := getInt("MAX_SESSIONS", 10000)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		CacheTTL:          cacheTTL,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		RateLimitCapacity: capacity,
		RateLimitWindow:   window,
		SessionIdle:       idle,
		MaxSessions:       maxSessions,
		HistoryLimit:      history,
		LayoutFile:        getEnv("LAYOUT_FILE", ""),
	}, nil
}

// NewLogger builds the process logger from the config.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	logger.SetLevel(level)

	switch c.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	return logger, nil
}

// LoadLayout reads the widget layout file, or returns the defaults when no
// file is configured.
func (c *Config) LoadLayout() (widget.Layout, error) {
	if c.LayoutFile == "" {
		return widget.DefaultLayout(), nil
	}

	raw, err := os.ReadFile(c.LayoutFile)
	if err != nil {
		return widget.Layout{}, fmt.Errorf("read layout %s: %w", c.LayoutFile, err)
	}

	var layout widget.Layout
	if err := yaml.Unmarshal(raw, &layout); err != nil {
		return widget.Layout{}, fmt.Errorf("parse layout %s: %w", c.LayoutFile, err)
	}
	return layout.WithDefaults(), nil
}

// getEnv returns the variable or the default when it is unset or empty.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
