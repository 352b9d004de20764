package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fps-cuber/parameter"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := t.TempDir()
	log, f, err := setupLogging(false, dir)
	require.NoError(t, err)
	assert.Nil(t, f)

	log.Info().Msg("dropped")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, f, err := setupLogging(true, dir)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	log.Debug().Str("k", "v").Msg("hello")

	data, err := os.ReadFile(filepath.Join(dir, parameter.LogFileName))
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, `"message":"hello"`)
	assert.Contains(t, line, `"session":`)
	assert.Contains(t, line, `"k":"v"`)
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, parameter.LogFileName)
	require.NoError(t, os.WriteFile(path, make([]byte, parameter.MaxLogSize+1), 0o644))

	_, f, err := setupLogging(true, dir)
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	rotated := false
	for _, e := range entries {
		if e.Name() != parameter.LogFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "old log should be renamed")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(parameter.MaxLogSize))
}

func TestSetupLogging_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, f, err := setupLogging(true, filepath.Join(file, "sub"))
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := consoleLogger(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.True(t, strings.Contains(buf.String(), "shown"))
}
