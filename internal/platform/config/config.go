// Package config loads application configuration from environment variables.
// All variables use the LEARNHUB_ prefix.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	API      APIConfig
	State    StateConfig
	Wishlist WishlistConfig
	Paths    PathsConfig
	Log      LogConfig
}

// APIConfig holds settings for the remote LMS API.
type APIConfig struct {
	BaseURL string
}

// StateConfig holds local durable state settings (token, identity, favorites).
type StateConfig struct {
	Backend string // "file", "memory" or "redis"
	Dir     string
	Redis   RedisConfig
}

// RedisConfig holds Redis connection settings for the redis state backend.
type RedisConfig struct {
	URL string
}

// WishlistConfig holds favorites storage settings.
type WishlistConfig struct {
	// PostgresURL, when set, stores favorites in PostgreSQL instead of the
	// local state backend (shared multi-device deployments).
	PostgresURL string
	MaxConns    int
	MinConns    int
}

// PathsConfig holds learning-path catalog settings.
type PathsConfig struct {
	CatalogDir string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with LEARNHUB_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL: envStr("LEARNHUB_API_URL", "http://localhost:8080/api"),
		},
		State: StateConfig{
			Backend: envStr("LEARNHUB_STATE_BACKEND", "file"),
			Dir:     envStr("LEARNHUB_STATE_DIR", defaultStateDir()),
			Redis: RedisConfig{
				URL: envStr("LEARNHUB_STATE_REDIS_URL", "redis://localhost:6379"),
			},
		},
		Wishlist: WishlistConfig{
			PostgresURL: envStr("LEARNHUB_WISHLIST_POSTGRES_URL", ""),
			MaxConns:    envInt("LEARNHUB_WISHLIST_MAX_CONNS", 5),
			MinConns:    envInt("LEARNHUB_WISHLIST_MIN_CONNS", 1),
		},
		Paths: PathsConfig{
			CatalogDir: envStr("LEARNHUB_PATH_CATALOG_DIR", "./paths"),
		},
		Log: LogConfig{
			Level:  envStr("LEARNHUB_LOG_LEVEL", "warn"),
			Format: envStr("LEARNHUB_LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("LEARNHUB_API_URL is required")
	}

	switch c.State.Backend {
	case "file", "memory", "redis":
	default:
		return fmt.Errorf("LEARNHUB_STATE_BACKEND must be 'file', 'memory' or 'redis', got %q", c.State.Backend)
	}

	if c.State.Backend == "redis" && c.State.Redis.URL == "" {
		return fmt.Errorf("LEARNHUB_STATE_REDIS_URL is required for the redis backend")
	}

	return nil
}

// defaultStateDir returns the per-user state directory, falling back to a
// dot directory in the working directory when it cannot be determined.
func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".learnhub"
	}
	return filepath.Join(base, "learnhub")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
