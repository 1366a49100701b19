package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config captures process configuration. Values come from the environment,
// optionally seeded from a .env file, and are parsed once in main and passed
// down explicitly; there is no global cache.
type Config struct {
	Addr     string `env:"MARINEVAL_ADDR" envDefault:":8080"`
	Env      string `env:"MARINEVAL_ENV" envDefault:"dev"`
	Version  string `env:"MARINEVAL_VERSION" envDefault:"0.1.0"`
	LogLevel string `env:"MARINEVAL_LOG_LEVEL" envDefault:"INFO"`

	// Vessel registry source: redis when a URL is set, the JSON file otherwise.
	VesselFile     string `env:"MARINEVAL_VESSEL_FILE" envDefault:"data/valid_vessels.json"`
	RedisURL       string `env:"MARINEVAL_REDIS_URL"`
	VesselRedisKey string `env:"MARINEVAL_VESSEL_REDIS_KEY" envDefault:"marineval:vessels"`

	// MaxBodyBytes caps validate request bodies; the extractor itself is
	// size-agnostic, so the cap is enforced at the transport boundary.
	MaxBodyBytes    int64         `env:"MARINEVAL_MAX_BODY_BYTES" envDefault:"1048576"`
	ShutdownTimeout time.Duration `env:"MARINEVAL_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses configuration from the environment. A .env file is applied
// first when present so local development matches deployed behavior.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
