package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/swfz/courserepo/internal/models"
)

// Config holds the application configuration
type Config struct {
	Dirs         []string // Institution directories to load
	Reports      []string // Report kinds to print, in order
	LayoutPath   string   // Layout file applied to every directory (empty = per-directory lookup)
	Verbose      bool     // Enable debug logging
	LogLevel     string   // zerolog level
	LogFormat    string   // "pretty" or "json"
	MaxCellWidth int      // Truncate table cells wider than this (0 = unlimited)

	ServerPort     string   // HTTP port for serve
	GinMode        string   // gin mode: debug, release, test
	DatabaseURL    string   // Optional database for the instructor summary (empty = in-memory)
	AllowedOrigins []string // CORS origins (empty = all)
	RateLimitRPS   float64  // Requests per second per client
	RateLimitBurst int      // Burst size per client
}

// Load reads configuration from the environment, loading .env first if present.
// Command-line flags override these values afterwards.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		Dirs:           splitList(getEnv("COURSEREPO_DIRS", "./Stevens")),
		Reports:        splitList(getEnv("COURSEREPO_REPORTS", "majors,instructors,students")),
		LayoutPath:     getEnv("COURSEREPO_LAYOUT", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		MaxCellWidth:   getEnvInt("MAX_CELL_WIDTH", 0),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

// Validate checks the configuration before any repository is loaded
func (c *Config) Validate() error {
	if len(c.Dirs) == 0 {
		return errors.New("at least one --dir must be specified")
	}

	for _, name := range c.Reports {
		if _, err := models.ParseReportKind(name); err != nil {
			return err
		}
	}

	if c.MaxCellWidth < 0 {
		return fmt.Errorf("--max-width must be >= 0: %w", models.ErrInvalidArgument)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive: %w", models.ErrInvalidArgument)
	}

	return nil
}

// LogLevelOrDebug returns "debug" in verbose mode, else the configured level
func (c *Config) LogLevelOrDebug() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// splitList splits a comma-separated value into trimmed, non-empty items
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
