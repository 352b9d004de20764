package main

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/fps-cuber/audio"
	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/game"
	"github.com/lixenwraith/fps-cuber/input"
	"github.com/lixenwraith/fps-cuber/parameter"
	"github.com/lixenwraith/fps-cuber/render"
)

// Hint lines for the HUD
const (
	hintUnlocked = "click or Esc to play"
	hintMuted    = "muted"
)

// inputTick is how often held keys are checked for release
const inputTick = 20 * time.Millisecond

// runTerminal plays on the controlling terminal until quit
func runTerminal(ctx context.Context, cfg config.Config, opts options, d sessionDeps) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "init screen")
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled && !opts.mute {
		if err := sound.Initialize(parameter.AudioSampleRate, cfg.Audio.Volume); err != nil {
			d.log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer sound.Cleanup()
		}
	}
	d.cues = sound

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	poller := input.NewPoller(screen, parameter.InputEventBuffer)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return poller.Run(gctx)
	})
	grp.Go(func() error {
		defer cancel()
		p := &player{screen: screen, poller: poller, sound: sound, cfg: cfg, debug: opts.debug, deps: d}
		return p.run(gctx)
	})

	if err := grp.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// player runs rounds of the game against the terminal, restarting on request
type player struct {
	screen tcell.Screen
	poller *input.Poller
	sound  *audio.SoundManager
	cfg    config.Config
	debug  bool
	deps   sessionDeps
}

func (p *player) run(ctx context.Context) error {
	for round := 0; ; round++ {
		cmd, err := p.round(ctx, round)
		logStatus(p.deps.log, p.deps.status, "round end")
		if err != nil {
			return err
		}
		if cmd != input.CommandRestart {
			return nil
		}
		p.deps.log.Info().Int("round", round).Msg("restart")
	}
}

// round plays one game and returns the command that ended it
func (p *player) round(ctx context.Context, round int) (input.Command, error) {
	tr := render.NewTerminalRenderer(p.screen, nil, p.deps.status, p.debug)
	d := p.deps
	d.renderer = tr
	d.overlay = tr
	g := newSession(p.cfg, round, d)

	machine := input.NewMachine(p.cfg.Input)
	p.hint(tr, machine)

	events := make(chan game.InputEvent, parameter.InputEventBuffer)
	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	// Draw once so the hint shows before the first frame
	tr.RenderFrame()

	done := make(chan error, 1)
	core.Go(func() {
		done <- g.Run(runCtx, events)
	})

	ticker := time.NewTicker(inputTick)
	defer ticker.Stop()

	finished := false
	forward := func(evs []game.InputEvent) {
		if finished {
			return
		}
		for _, ev := range evs {
			select {
			case events <- ev:
			default:
				p.deps.log.Warn().Msg("input queue full, dropping event")
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			stop()
			if !finished {
				<-done
			}
			return input.CommandQuit, nil

		case err := <-done:
			finished = true
			if err != nil && !errors.Is(err, context.Canceled) {
				return input.CommandQuit, err
			}
			// Game over screen stays until restart or quit
			tr.RenderFrame()

		case now := <-ticker.C:
			forward(machine.Tick(now))

		case ev, ok := <-p.poller.Events():
			if !ok {
				stop()
				if !finished {
					<-done
				}
				return input.CommandQuit, nil
			}
			if _, resize := ev.(*tcell.EventResize); resize {
				p.screen.Sync()
				if finished {
					tr.RenderFrame()
				}
				continue
			}

			evs, cmd := machine.Process(ev, time.Now())
			forward(evs)
			p.hint(tr, machine)

			switch cmd {
			case input.CommandQuit, input.CommandRestart:
				stop()
				if !finished {
					<-done
				}
				return cmd, nil
			case input.CommandMute:
				muted := p.sound.ToggleMute()
				p.deps.log.Debug().Bool("muted", muted).Msg("mute toggled")
				p.hint(tr, machine)
			}
		}
	}
}

// hint refreshes the HUD status line
func (p *player) hint(tr *render.TerminalRenderer, m *input.Machine) {
	switch {
	case !m.Locked():
		tr.SetStatus(hintUnlocked)
	case p.sound.Muted():
		tr.SetStatus(hintMuted)
	default:
		tr.SetStatus("")
	}
}
