package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/status"
)

// options are the command-line overrides on top of the config file
type options struct {
	configPath string
	seed       int64
	debug      bool
	mute       bool
	headless   bool
	frames     int
	maxTargets int
}

func main() {
	// Panic recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "fps-cuber",
		Short:         "Shoot the cubes before they crush you",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.Int64Var(&opts.seed, "seed", 0, "world seed, 0 picks one from the clock")
	f.BoolVar(&opts.debug, "debug", false, "write a debug log and show metrics in the HUD")
	f.BoolVar(&opts.mute, "mute", false, "start without audio")
	f.BoolVar(&opts.headless, "headless", false, "run a scripted session without a terminal")
	f.IntVar(&opts.frames, "frames", 3600, "frames to simulate in headless mode")
	f.IntVar(&opts.maxTargets, "max-targets", 0, "cap on live targets, 0 is unlimited")
	return cmd
}

// loadConfig reads the file and applies flags that were set explicitly
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Game.Seed = opts.seed
	}
	if f.Changed("debug") {
		cfg.Log.Debug = opts.debug
	}
	if f.Changed("mute") && opts.mute {
		cfg.Audio.Enabled = false
	}
	if f.Changed("max-targets") {
		cfg.Spawn.MaxTargets = opts.maxTargets
	}
	cfg.Game.Seed = resolveSeed(cfg.Game.Seed)
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, cfg config.Config, opts options) error {
	ctx := cmd.Context()

	if opts.headless {
		log := consoleLogger(cmd.ErrOrStderr(), cfg.Log.Debug)
		_, err := runHeadless(ctx, cfg, opts.frames, log)
		return err
	}

	log, logFile, err := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log.Info().Int64("seed", cfg.Game.Seed).Msg("starting")

	opts.debug = cfg.Log.Debug
	return runTerminal(ctx, cfg, opts, sessionDeps{
		status: status.NewRegistry(),
		log:    log,
	})
}
