package main

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/game"
)

func headlessConfig() config.Config {
	cfg := config.Default()
	cfg.Game.Seed = 42
	cfg.Terrain.GridSize = 8
	return cfg
}

func TestBot_Script(t *testing.T) {
	b := newBot(1)

	first := append([]game.InputEvent(nil), b.inputs(0)...)
	require.GreaterOrEqual(t, len(first), 3)
	assert.Equal(t, game.InputLock, first[0].Kind)
	assert.Equal(t, game.InputFireDown, first[1].Kind)
	assert.Equal(t, game.InputEvent{Kind: game.InputKeyDown, Key: game.KeyForward}, first[2])

	jump := b.inputs(botJumpPeriod / 2)
	assert.Contains(t, jump, game.InputEvent{Kind: game.InputKeyDown, Key: game.KeyJump})
	release := b.inputs(botJumpPeriod/2 + 1)
	assert.Contains(t, release, game.InputEvent{Kind: game.InputKeyUp, Key: game.KeyJump})

	for _, ev := range b.inputs(7) {
		if ev.Kind == game.InputLook {
			assert.LessOrEqual(t, ev.DYaw, botMaxTurn)
			assert.GreaterOrEqual(t, ev.DYaw, -botMaxTurn)
		}
	}
}

func TestRunHeadless_Deterministic(t *testing.T) {
	cfg := headlessConfig()

	a, err := runHeadless(context.Background(), cfg, 300, zerolog.Nop())
	require.NoError(t, err)
	b, err := runHeadless(context.Background(), cfg, 300, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a.Frames == 300 || a.Dead)
	assert.GreaterOrEqual(t, a.Meshes, a.Targets)
	assert.GreaterOrEqual(t, a.Shots, 0)
}

func TestRunHeadless_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runHeadless(ctx, headlessConfig(), 100, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Frames)
}

func TestLoadConfig_Flags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--seed", "9", "--max-targets", "5", "--mute"}))

	var opts options
	opts.seed, _ = cmd.Flags().GetInt64("seed")
	opts.maxTargets, _ = cmd.Flags().GetInt("max-targets")
	opts.mute, _ = cmd.Flags().GetBool("mute")

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Game.Seed)
	assert.Equal(t, 5, cfg.Spawn.MaxTargets)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadConfig_RandomSeedWhenUnset(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse(nil))

	cfg, err := loadConfig(cmd, options{})
	require.NoError(t, err)
	assert.NotZero(t, cfg.Game.Seed)
}

func TestPhysicsConfig_Overrides(t *testing.T) {
	c := config.Default().Physics
	c.Gravity = -5
	c.Substeps = 3

	pc := physicsConfig(c)
	assert.Equal(t, -5.0, pc.Gravity.Y())
	assert.Equal(t, 3, pc.Substeps)
	assert.Equal(t, c.Friction, pc.Friction)
}
