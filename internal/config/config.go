package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Prompt sources, one location per schema shape, tried in this order.
	CleanURL  string
	NestedURL string
	LegacyURL string

	// Settings store
	SettingsPath string

	// Presentation
	Language string // two-letter code, treated case-insensitively
	BaseURL  string // base address for share links

	// Fetching
	FetchTimeout time.Duration
	FetchRetries int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		CleanURL:     getEnv("JOTKIT_CLEAN_URL", "data/prompts.yaml"),
		NestedURL:    getEnv("JOTKIT_NESTED_URL", "data/prompts-v2.yaml"),
		LegacyURL:    getEnv("JOTKIT_LEGACY_URL", "data/prompts-legacy.yaml"),
		SettingsPath: getEnv("JOTKIT_SETTINGS_PATH", "data/settings.db"),
		Language:     strings.ToLower(getEnv("JOTKIT_LANGUAGE", "en")),
		BaseURL:      getEnv("JOTKIT_BASE_URL", "https://jotkit.app/"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	var err error
	cfg.FetchTimeout, err = time.ParseDuration(getEnv("JOTKIT_FETCH_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid JOTKIT_FETCH_TIMEOUT: %w", err)
	}

	retries, err := strconv.Atoi(getEnv("JOTKIT_FETCH_RETRIES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid JOTKIT_FETCH_RETRIES: %w", err)
	}
	cfg.FetchRetries = retries

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.SettingsPath == "" {
		return fmt.Errorf("JOTKIT_SETTINGS_PATH is required")
	}
	if len(c.Language) != 2 {
		return fmt.Errorf("JOTKIT_LANGUAGE must be a two-letter code, got %q", c.Language)
	}
	return nil
}

// ValidateForLoad checks configuration needed to load the prompt catalog.
func (c *Config) ValidateForLoad() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.CleanURL == "" && c.NestedURL == "" && c.LegacyURL == "" {
		return fmt.Errorf("at least one prompt source is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
