package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage types for round history
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Player profile
	PlayerID string
	Language string // locale for the first run, before a language is stored

	// Table rules
	InitialBalance    int64
	DealerDelay       time.Duration
	ReshuffleEachDraw bool
	RNGSeed           int64 // 0 seeds from the clock

	// Persistence
	DataDir         string
	StorageType     string
	PreferencesPath string
	DatabasePath    string

	// Optional round history export
	ElasticsearchURL      string
	ElasticsearchUsername string
	ElasticsearchPassword string

	// Logging
	LogLevel string

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for resource paths
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := &Config{
		PlayerID:              getEnvWithDefault("PLAYER_ID", "local"),
		Language:              getEnvWithDefault("LANGUAGE", os.Getenv("LANG")),
		Environment:           getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:              getEnvWithDefault("LOG_LEVEL", "info"),
		DataDir:               getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		StorageType:           getEnvWithDefault("STORAGE_TYPE", StorageMemory),
		ElasticsearchURL:      os.Getenv("ELASTICSEARCH_URL"),
		ElasticsearchUsername: os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticsearchPassword: os.Getenv("ELASTICSEARCH_PASSWORD"),
	}

	if cfg.InitialBalance, err = getInt64("INITIAL_BALANCE", 10_000); err != nil {
		return nil, err
	}
	if cfg.RNGSeed, err = getInt64("RNG_SEED", 0); err != nil {
		return nil, err
	}
	if cfg.DealerDelay, err = getDuration("DEALER_DELAY", 300*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.ReshuffleEachDraw, err = getBool("RESHUFFLE_EACH_DRAW", true); err != nil {
		return nil, err
	}

	cfg.PreferencesPath = getEnvWithDefault("PREFERENCES_PATH", filepath.Join(cfg.DataDir, "preferences.json"))
	cfg.DatabasePath = getEnvWithDefault("DATABASE_PATH", filepath.Join(cfg.DataDir, "tucojack.db"))

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration can run a table
func (c *Config) Validate() error {
	if c.PlayerID == "" {
		return fmt.Errorf("PLAYER_ID is required")
	}
	if c.InitialBalance <= 0 {
		return fmt.Errorf("INITIAL_BALANCE must be positive, got %d", c.InitialBalance)
	}
	if c.DealerDelay < 0 {
		return fmt.Errorf("DEALER_DELAY cannot be negative, got %s", c.DealerDelay)
	}
	switch c.StorageType {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("unknown STORAGE_TYPE %q", c.StorageType)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
