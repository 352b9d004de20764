package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.Spawn.MaxTargets, "targets are uncapped by default")
	assert.Equal(t, 100*time.Millisecond, cfg.Weapon.FireInterval)
	assert.Equal(t, 5*time.Second, cfg.Weapon.BulletLifetime)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte(`
game:
  seed: 42
spawn:
  max_targets: 200
weapon:
  fire_interval: 250ms
audio:
  enabled: false
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 200, cfg.Spawn.MaxTargets)
	assert.Equal(t, 250*time.Millisecond, cfg.Weapon.FireInterval)
	assert.False(t, cfg.Audio.Enabled)
	// Untouched sections keep defaults
	assert.Equal(t, Default().Player, cfg.Player)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("game: [unterminated"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("physics:\n  substeps: 0\n"), 0o644))
	_, err = Load(invalid)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalid))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"frame rate", func(c *Config) { c.Game.FrameRate = 0 }},
		{"player mass", func(c *Config) { c.Player.Mass = 0 }},
		{"max health", func(c *Config) { c.Player.MaxHealth = 0 }},
		{"fire interval", func(c *Config) { c.Weapon.FireInterval = 0 }},
		{"spawn chance", func(c *Config) { c.Spawn.CubeChance = 1.5 }},
		{"cube range", func(c *Config) { c.Spawn.CubeSizeMax = 0.1 }},
		{"sphere range", func(c *Config) { c.Spawn.SphereRadiusMin = 0 }},
		{"max targets", func(c *Config) { c.Spawn.MaxTargets = -1 }},
		{"terrain", func(c *Config) { c.Terrain.GridSize = 0 }},
		{"damping", func(c *Config) { c.Physics.LinearDamping = 1 }},
		{"volume", func(c *Config) { c.Audio.Volume = 2 }},
		{"hold", func(c *Config) { c.Input.RepeatHold = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrInvalid))
		})
	}
}
