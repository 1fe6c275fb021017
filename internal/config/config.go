// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Store backend names.
const (
	StoreMemory = "memory"
	StoreBadger = "badger"
)

// Cache backend names.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Cache   CacheConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// StoreConfig holds business record store settings.
type StoreConfig struct {
	// Backend selects the record store: "memory" or "badger".
	Backend string `env:"STORE_BACKEND" envDefault:"memory"`

	// Path is the Badger data directory; ignored by the memory backend.
	Path string `env:"STORE_PATH" envDefault:"./data/businesses"`

	// SeedFile is a JSON file of business records loaded into an empty
	// store at startup. Empty disables seeding.
	SeedFile string `env:"STORE_SEED_FILE" envDefault:"businesses.json"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	// Backend selects the response cache: "memory" or "redis".
	Backend string `env:"CACHE_BACKEND" envDefault:"memory"`

	// TTL is how long a cached search outcome stays fresh.
	TTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Capacity bounds the in-memory cache; ignored by the Redis backend.
	Capacity int `env:"CACHE_CAPACITY" envDefault:"1000"`

	// RedisAddr is the host:port of the Redis server.
	RedisAddr string `env:"CACHE_REDIS_ADDR" envDefault:"localhost:6379"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Validate store settings
	switch cfg.Store.Backend {
	case StoreMemory:
	case StoreBadger:
		if cfg.Store.Path == "" {
			return fmt.Errorf("STORE_PATH is required for the badger backend")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be one of: memory, badger; got %q", cfg.Store.Backend)
	}

	// Validate cache settings
	switch cfg.Cache.Backend {
	case CacheMemory:
		if cfg.Cache.Capacity < 1 {
			return fmt.Errorf("CACHE_CAPACITY must be positive, got %d", cfg.Cache.Capacity)
		}
	case CacheRedis:
		if cfg.Cache.RedisAddr == "" {
			return fmt.Errorf("CACHE_REDIS_ADDR is required for the redis backend")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis; got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
