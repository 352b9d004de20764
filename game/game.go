package game

import (
	"math/rand"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/parameter"
	"github.com/lixenwraith/fps-cuber/physics"
	"github.com/lixenwraith/fps-cuber/status"
	"github.com/lixenwraith/fps-cuber/vmath"
)

// Deps are the collaborators a Game drives
type Deps struct {
	Engine   physics.Engine
	Renderer Renderer
	Overlay  Overlay // optional
	Cues     Cues    // optional
	Clock    Clock   // optional, real time when nil
	Rand     *rand.Rand
	Status   *status.Registry // optional
	Logger   zerolog.Logger
}

// Game owns the world state and all systems of one session
// Every method must be called from the loop goroutine
type Game struct {
	cfg config.Config
	log zerolog.Logger

	eng      physics.Engine
	renderer Renderer
	overlay  Overlay
	cues     Cues
	clock    Clock
	rng      *rand.Rand

	state    *WorldState
	controls Controls
	intents  *IntentQueue
	timers   *TimerQueue

	player    *PlayerController
	weapon    *WeaponSystem
	spawner   *ObjectSpawner
	hazard    *HazardSystem
	hostility *Hostility

	dt   float64
	tint core.RGB

	// Cached metric pointers
	statFrames  *atomic.Int64
	statBodies  *atomic.Int64
	statTargets *atomic.Int64
	statBullets *atomic.Int64
	statIntents *atomic.Int64
	statStepMs  *status.AtomicFloat
	statFrameMs *status.AtomicFloat
	statusReg   *status.Registry
}

// New builds terrain and the player and wires every system
func New(cfg config.Config, d Deps) *Game {
	if d.Overlay == nil {
		d.Overlay = nopOverlay{}
	}
	if d.Cues == nil {
		d.Cues = nopCues{}
	}
	if d.Clock == nil {
		d.Clock = TimeProvider{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(cfg.Game.Seed))
	}
	if d.Status == nil {
		d.Status = status.NewRegistry()
	}

	g := &Game{
		cfg:      cfg,
		log:      d.Logger,
		eng:      d.Engine,
		renderer: d.Renderer,
		overlay:  d.Overlay,
		cues:     d.Cues,
		clock:    d.Clock,
		rng:      d.Rand,
		state:    NewWorldState(cfg.Player.MaxHealth, cfg.Player.AggroThreshold),
		controls: NewControls(parameter.LookPitchMax),
		intents:  NewIntentQueue(parameter.IntentQueueInitialCap),
		timers:   &TimerQueue{},
		dt:       1 / float64(cfg.Game.FrameRate),
		tint:     core.RGBWhite,

		statusReg:   d.Status,
		statFrames:  d.Status.Ints.Get(status.KeyFrames),
		statBodies:  d.Status.Ints.Get(status.KeyBodies),
		statTargets: d.Status.Ints.Get(status.KeyTargets),
		statBullets: d.Status.Ints.Get(status.KeyBullets),
		statIntents: d.Status.Ints.Get(status.KeyIntents),
		statStepMs:  d.Status.Floats.Get(status.KeyStepMillis),
		statFrameMs: d.Status.Floats.Get(status.KeyFrameMillis),
	}

	g.player = NewPlayerController(g.eng, g.cues, cfg.Player, cfg.Physics.Gravity)
	g.weapon = NewWeaponSystem(g.eng, g.renderer, g.overlay, g.cues, g.intents, g.timers, cfg.Weapon, g.log)
	g.weapon.onHeal = g.healthChanged
	g.spawner = NewObjectSpawner(g.eng, g.renderer, g.rng, cfg.Spawn, g.log)
	g.hazard = NewHazardSystem(g.eng, g.cues, g.intents, g.healthChanged, g.GameOver)
	g.hostility = NewHostility(g.eng, g.rng, cfg.Spawn.HostilityForce, parameter.HostilityRampDivisor)

	now := g.clock.Now()
	NewTerrainBuilder(g.eng, g.renderer, g.rng, cfg.Terrain).Build(g.state, now)
	g.spawnPlayer()
	g.hazard.Register(g.state)

	g.renderer.SetBackgroundTint(g.tint)
	g.overlay.ShowHealth(g.state.Player.Health)
	g.overlay.ShowScore(g.state.Player.Score)

	g.log.Debug().Int("terrain", len(g.state.Terrain)).Int64("seed", cfg.Game.Seed).Msg("world built")
	return g
}

func (g *Game) spawnPlayer() {
	half := mgl64.Vec3{parameter.PlayerHalfWidth, parameter.PlayerHalfHeight, parameter.PlayerHalfDepth}
	spawn := mgl64.Vec3{parameter.PlayerSpawnX, parameter.PlayerSpawnY, parameter.PlayerSpawnZ}
	p := &g.state.Player
	p.Body = g.eng.CreateBody(physics.Box(half), g.cfg.Player.Mass, spawn, GroupPlayer, MaskPlayer)
	p.Height = spawn.Y()
}

// State exposes the world state for inspection
func (g *Game) State() *WorldState { return g.state }

// Controls returns a copy of the latched controls
func (g *Game) Controls() Controls { return g.controls }

// Dead reports whether the game is over
func (g *Game) Dead() bool { return g.state.Player.Dead }

// Status returns the metrics registry the game writes to
func (g *Game) Status() *status.Registry { return g.statusReg }

// Tint returns the current background tint
func (g *Game) Tint() core.RGB { return g.tint }

// Camera returns the view from the player body
func (g *Game) Camera() Camera {
	return Camera{
		Position: g.eng.Position(g.state.Player.Body),
		Yaw:      g.controls.Yaw,
		Pitch:    g.controls.Pitch,
	}
}

// Facing returns the unit view direction
func (g *Game) Facing() mgl64.Vec3 {
	return vmath.FacingFromAngles(g.controls.Yaw, g.controls.Pitch)
}

// HandleInput latches one input event
func (g *Game) HandleInput(ev InputEvent) {
	c := &g.controls
	if c.Disabled {
		return
	}
	switch ev.Kind {
	case InputKeyDown:
		c.setKey(ev.Key, true)
		if ev.Key == KeyForward {
			g.cues.StartMusic()
		}
	case InputKeyUp:
		c.setKey(ev.Key, false)
		if ev.Key == KeyJump {
			g.state.Player.Ascending = false
		}
	case InputFireDown:
		c.Fire = true
	case InputFireUp:
		c.Fire = false
	case InputLock, InputUnlock:
		c.Locked = ev.Kind == InputLock
		if c.Locked {
			if g.state.Player.Health > 0 {
				g.cues.StartMusic()
			}
		} else {
			g.cues.PauseMusic()
		}
		g.state.Player.Ascending = false
	case InputLook:
		if c.Locked {
			c.look(ev.DYaw, ev.DPitch)
		}
	}
}

// healthChanged refreshes the hearts and moves the tint toward red
func (g *Game) healthChanged() {
	h := g.state.Player.Health
	g.overlay.ShowHealth(h)
	intensity := 1 - float64(h)/float64(g.state.MaxHealth())
	g.tint = g.tint.Blend(core.RGBFromFloat(intensity, 0, 0), parameter.TintLerp)
	g.renderer.SetBackgroundTint(g.tint)
}

// GameOver ends the session; repeated calls have no further effect
func (g *Game) GameOver(reason string) {
	if !g.state.MarkDead() {
		return
	}
	g.healthChanged()
	g.cues.PlayCue(core.SoundOof)
	g.cues.PlayCue(core.SoundDead)
	g.cues.PauseMusic()
	g.overlay.ShowGameOver()
	g.controls.disable()

	p := g.state.Player
	g.log.Info().Str("reason", reason).Int("score", p.Score).Int("shots", p.ShotsFired).
		Int("targets", len(g.state.Targets())).Msg("game over")
}

// apply resolves one deferred intent after the physics step
func (g *Game) apply(in Intent) {
	switch in.Kind {
	case IntentBulletHit:
		g.weapon.ResolveHit(g.state, in)
	case IntentPlayerContact:
		g.hazard.ApplyContact(g.state, in)
	case IntentKillingFloor:
		g.hazard.ApplyKillingFloor(g.state)
	default:
		g.log.Warn().Stringer("kind", in.Kind).Msg("unknown intent")
	}
}
