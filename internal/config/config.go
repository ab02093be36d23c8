// Package config reads server settings from the environment, loading a
// .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr          string        `env:"SIGNIFICADO_ADDR" envDefault:":7340"`
	Socket        string        `env:"SIGNIFICADO_SOCKET"`
	DBPath        string        `env:"SIGNIFICADO_DB" envDefault:"significado.db"`
	Store         string        `env:"SIGNIFICADO_STORE" envDefault:"sqlite"`
	RedisAddr     string        `env:"SIGNIFICADO_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"SIGNIFICADO_REDIS_PASSWORD"`
	RedisDB       int           `env:"SIGNIFICADO_REDIS_DB" envDefault:"0"`
	KeysFile      string        `env:"SIGNIFICADO_KEYS_FILE"`
	SearchTTL     time.Duration `env:"SIGNIFICADO_SEARCH_TTL" envDefault:"24h"`
	SweepInterval time.Duration `env:"SIGNIFICADO_SWEEP_INTERVAL" envDefault:"10m"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string        `env:"LOG_FILE"`
}

// Load reads envFiles (or ./.env when none are given) and then the
// process environment. Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("%w: SIGNIFICADO_DB required for sqlite store", ErrInvalidConfig)
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("%w: SIGNIFICADO_REDIS_ADDR required for redis store", ErrInvalidConfig)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}
	if c.SearchTTL <= 0 {
		return fmt.Errorf("%w: search ttl must be positive", ErrInvalidConfig)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive", ErrInvalidConfig)
	}
	return nil
}
