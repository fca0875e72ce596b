// Package config loads runtime settings from STATION_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds host and scene settings. Command-line flags override it.
type Config struct {
	Width  int `env:"STATION_WIDTH"  envDefault:"480"`
	Height int `env:"STATION_HEIGHT" envDefault:"270"`
	Scale  int `env:"STATION_SCALE"  envDefault:"2"`
	TPS    int `env:"STATION_TPS"    envDefault:"60"`

	Particles int   `env:"STATION_PARTICLES" envDefault:"300"`
	Seed      int64 `env:"STATION_SEED"      envDefault:"0"`
	HUD       bool  `env:"STATION_HUD"       envDefault:"true"`

	LogLevel string `env:"STATION_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the environment configuration with defaults applied.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level maps a level name (debug, info, warn, error) to a slog level.
func Level(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", name, err)
	}
	return l, nil
}
