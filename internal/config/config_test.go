package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Width:     480,
		Height:    270,
		Scale:     2,
		TPS:       60,
		Particles: 300,
		HUD:       true,
		LogLevel:  "info",
	}, cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STATION_PARTICLES", "1200")
	t.Setenv("STATION_HUD", "false")
	t.Setenv("STATION_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.Particles)
	assert.False(t, cfg.HUD)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadError(t *testing.T) {
	t.Setenv("STATION_TPS", "fast")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := Level(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := Level("loud")
	assert.Error(t, err)
}
