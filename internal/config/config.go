package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/snnyvrz/shelfshare/apps/library-graphql/internal/logging"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	GinMode   string
	Addr      string
	LogLevel  slog.Level
	LogFormat string

	StoreDriver string
	SQLiteDSN   string
	FixturePath string

	RateLimitRPS   float64
	RateLimitBurst int

	GraphQLMaxDepth int
}

// Load reads the configuration from the environment. Variables from the
// dotenv file named by ENV_FILE (default .env) are loaded first when the
// file exists; variables already set in the environment win.
func Load() (*Config, error) {
	envFile := getenv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	level, err := logging.ParseLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GinMode:     getenv("GIN_MODE", "debug"),
		Addr:        getenv("APP_ADDR", ":4000"),
		LogLevel:    level,
		LogFormat:   getenv("LOG_FORMAT", "text"),
		StoreDriver: getenv("STORE_DRIVER", StoreMemory),
		SQLiteDSN:   getenv("SQLITE_DSN", "file::memory:?cache=shared"),
		FixturePath: os.Getenv("FIXTURE_PATH"),
	}

	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 50); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 100); err != nil {
		return nil, err
	}
	if cfg.GraphQLMaxDepth, err = getInt("GRAPHQL_MAX_DEPTH", 10); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("STORE_DRIVER: unknown driver %q", c.StoreDriver)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT: unknown format %q", c.LogFormat)
	}

	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}
	if c.GraphQLMaxDepth <= 0 {
		return errors.New("GRAPHQL_MAX_DEPTH must be positive")
	}

	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
