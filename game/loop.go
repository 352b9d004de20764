package game

import (
	"context"
	"time"
)

// Frame advances the simulation by one fixed step, returns false once the game is over
// Order: due timers, player velocity, physics step, intent drain, render sync, spawn, fire, hostility, render
func (g *Game) Frame() bool {
	if g.state.Player.Dead {
		return false
	}
	start := time.Now()
	now := g.clock.Now()
	s := g.state

	// Bullet expiry runs between frames, never inside a step
	g.timers.RunDue(now)

	g.player.Update(s, MoveInput{
		Forward:  g.controls.Forward,
		Back:     g.controls.Back,
		Left:     g.controls.Left,
		Right:    g.controls.Right,
		JumpEdge: g.controls.takeJumpEdge(),
		Locked:   g.controls.Locked,
		Facing:   g.Facing(),
	}, g.dt)

	stepStart := time.Now()
	g.eng.Step(g.dt)
	g.statStepMs.Set(float64(time.Since(stepStart).Microseconds()) / 1000)

	drained := g.intents.Drain(g.apply)
	g.statIntents.Store(int64(drained))

	if !s.Player.Dead {
		g.syncTransforms()
		g.spawner.Update(s, now)
		cam := g.Camera()
		g.weapon.Update(s, g.controls.Fire, now, cam.Position, g.Facing())
		g.hostility.Update(s)
	}

	g.renderer.Render(g.Camera())

	g.statFrames.Add(1)
	g.statBodies.Store(int64(g.eng.BodyCount()))
	g.statTargets.Store(int64(len(s.Targets())))
	g.statBullets.Store(int64(len(s.Bullets())))
	g.statFrameMs.Set(float64(time.Since(start).Microseconds()) / 1000)

	return !s.Player.Dead
}

// syncTransforms copies body transforms into the paired meshes
func (g *Game) syncTransforms() {
	for _, e := range g.state.Targets() {
		g.renderer.SetTransform(e.Mesh, g.eng.Position(e.Body), g.eng.Orientation(e.Body))
	}
	for _, e := range g.state.Bullets() {
		g.renderer.SetTransform(e.Mesh, g.eng.Position(e.Body), g.eng.Orientation(e.Body))
	}
}

// Run drives frames at the configured rate and latches input between them
// Returns nil when the game ends or events closes, ctx.Err() on cancellation
func (g *Game) Run(ctx context.Context, events <-chan InputEvent) error {
	ticker := time.NewTicker(g.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.HandleInput(ev)
		case <-ticker.C:
			if !g.Frame() {
				return nil
			}
		}
	}
}
