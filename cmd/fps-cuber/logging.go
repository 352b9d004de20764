package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/fps-cuber/parameter"
)

// setupLogging opens the debug log under dir, rotating it once it passes MaxLogSize
// With debug off it returns a disabled logger and no file: the terminal owns stdout
func setupLogging(debug bool, dir string) (zerolog.Logger, *os.File, error) {
	if !debug {
		return zerolog.Nop(), nil, nil
	}
	if dir == "" {
		dir = parameter.LogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "create log dir %s", dir)
	}

	path := filepath.Join(dir, parameter.LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > parameter.MaxLogSize {
		ext := filepath.Ext(parameter.LogFileName)
		base := parameter.LogFileName[:len(parameter.LogFileName)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
		if err := os.Rename(path, rotated); err != nil {
			return zerolog.Nop(), nil, eris.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "open log %s", path)
	}
	return newLogger(f, zerolog.DebugLevel), f, nil
}

// newLogger tags every entry with a per-process session id
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
}

// consoleLogger writes human-readable logs for headless runs
func consoleLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return newLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}, level)
}
