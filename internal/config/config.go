package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config holds the settings for the web server. Command-line flags may override them.
type Config struct {
	Addr            string        `env:"MDFORMS_ADDR" envDefault:":4000"`
	DSN             string        `env:"MDFORMS_DSN" envDefault:"web:pass@/mdforms?parseTime=true"`
	Debug           bool          `env:"MDFORMS_DEBUG" envDefault:"false"`
	SessionLifetime time.Duration `env:"MDFORMS_SESSION_LIFETIME" envDefault:"12h"`
	Migrate         bool          `env:"MDFORMS_MIGRATE" envDefault:"true"`
}

// Load reads the given .env files into the environment and parses it into a Config.
// With no files it tries ./.env and ignores a missing one.
// Variables already set in the environment take precedence over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}

	return &cfg, nil
}
