package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config describes all runtime settings for the game.
// It is loaded once in main, validated, and passed on explicitly.
type Config struct {
	Log struct {
		Level  string `env:"LOG_LEVEL" envDefault:"warn"`
		Format string `env:"LOG_FORMAT" envDefault:"console"` // console|json
	}

	UI struct {
		Color       string        `env:"COLOR" envDefault:"auto"` // auto|always|never
		SplashDelay time.Duration `env:"SPLASH_DELAY" envDefault:"600ms"`
	}

	Game struct {
		// Seed fixes the secret sequence for reproducible rounds.
		// Zero means a fresh secret every run.
		Seed uint64 `env:"GAME_SEED" envDefault:"0"`
	}
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want console|json)", c.Log.Format)
	}
	switch c.UI.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unsupported COLOR=%q (want auto|always|never)", c.UI.Color)
	}
	if c.UI.SplashDelay < 0 {
		return fmt.Errorf("SPLASH_DELAY must not be negative, got %s", c.UI.SplashDelay)
	}
	return nil
}
