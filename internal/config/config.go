package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/garrettladley/tally/internal/env"
)

type Config struct {
	ServerURL      string        `env:"TALLY_URL" envDefault:"https://ruvimserver.ddns.net"`
	RequestTimeout time.Duration `env:"TALLY_REQUEST_TIMEOUT" envDefault:"5s"`

	// RefreshInterval of 0 disables the background poll.
	RefreshInterval time.Duration `env:"TALLY_REFRESH_INTERVAL" envDefault:"30s"`
	CountersTitle   string        `env:"TALLY_COUNTERS_TITLE" envDefault:"Death Counter"`
	CausesTitle     string        `env:"TALLY_CAUSES_TITLE" envDefault:"Causes of Death"`

	Env     appenv.Environment `env:"ENV" envDefault:"production"`
	LogFile string             `env:"LOG_FILE"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// validate rejects values the parser accepts but that would stall every request.
func (c Config) validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("TALLY_REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("TALLY_REFRESH_INTERVAL must not be negative, got %s", c.RefreshInterval)
	}
	return nil
}
