package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/core"
	"github.com/lixenwraith/fps-cuber/parameter"
	"github.com/lixenwraith/fps-cuber/physics"
)

// WeaponSystem fires rate-limited bullets and resolves their first contact
type WeaponSystem struct {
	eng      physics.Engine
	renderer Renderer
	overlay  Overlay
	cues     Cues
	intents  *IntentQueue
	timers   *TimerQueue
	log      zerolog.Logger

	cfg      config.WeaponConfig
	offset   mgl64.Vec3
	lastFire time.Time
	fired    bool

	// onHeal is called after a hit restores health
	onHeal func()
}

// NewWeaponSystem creates a weapon bound to the frame's intent and timer queues
func NewWeaponSystem(eng physics.Engine, r Renderer, o Overlay, cues Cues, intents *IntentQueue, timers *TimerQueue,
	cfg config.WeaponConfig, log zerolog.Logger) *WeaponSystem {
	return &WeaponSystem{
		eng:      eng,
		renderer: r,
		overlay:  o,
		cues:     cues,
		intents:  intents,
		timers:   timers,
		log:      log,
		cfg:      cfg,
		offset:   mgl64.Vec3(parameter.BulletOffset),
	}
}

// Update fires when the trigger is held and the rate interval has elapsed
// Held fire keeps an even cadence: the next shot is due one interval after the previous due time
func (w *WeaponSystem) Update(s *WorldState, fireHeld bool, now time.Time, origin, facing mgl64.Vec3) *Entity {
	if !fireHeld || s.Player.Dead {
		return nil
	}
	if w.fired {
		elapsed := now.Sub(w.lastFire)
		if elapsed < w.cfg.FireInterval {
			return nil
		}
		if elapsed < 2*w.cfg.FireInterval {
			w.lastFire = w.lastFire.Add(w.cfg.FireInterval)
		} else {
			w.lastFire = now
		}
	} else {
		w.lastFire = now
		w.fired = true
	}
	return w.Fire(s, now, origin, facing)
}

// Fire spawns a bullet at origin+offset moving along facing
func (w *WeaponSystem) Fire(s *WorldState, now time.Time, origin, facing mgl64.Vec3) *Entity {
	pos := origin.Add(w.offset)
	e := spawnEntity(w.eng, w.renderer, KindBullet, physics.Sphere(w.cfg.BulletRadius), core.RGBWhite,
		w.cfg.BulletMass, pos, GroupBullet, MaskBullet, now)
	w.eng.SetVelocity(e.Body, facing.Mul(w.cfg.BulletSpeed))
	s.AddBullet(e)

	// One-shot: the first reported contact wins, later reports in the same or later steps are ignored
	w.eng.OnCollision(e.Body, func(other physics.BodyHandle, normal mgl64.Vec3) {
		if e.resolved || !e.alive {
			return
		}
		e.resolved = true
		w.intents.Push(Intent{Kind: IntentBulletHit, Source: e, Other: other, Normal: normal})
	})

	w.timers.After(now, w.cfg.BulletLifetime, func() {
		w.Expire(s, e)
	})

	w.cues.PlayCue(core.SoundShoot)
	return e
}

// ResolveHit applies a bullet's first contact after the step
func (w *WeaponSystem) ResolveHit(s *WorldState, in Intent) {
	// Game over drained earlier in this frame
	if s.Player.Dead {
		return
	}
	bullet := in.Source
	if target := s.Lookup(in.Other); target != nil && target.Kind == KindTarget {
		s.Despawn(target, w.eng, w.renderer)
		s.Despawn(bullet, w.eng, w.renderer)
		w.overlay.ShowScore(s.AddScore())
		w.cues.PlayCue(core.SoundHit)
		if s.Heal(parameter.HealPerHit) && w.onHeal != nil {
			w.onHeal()
		}
		w.log.Debug().Uint64("target", uint64(in.Other)).Int("score", s.Player.Score).Msg("target destroyed")
	}
	// Counted on every first contact, uncounted only by expiry
	s.RecordShot()
}

// Expire despawns a bullet still alive at the end of its lifetime
func (w *WeaponSystem) Expire(s *WorldState, e *Entity) {
	if s.Despawn(e, w.eng, w.renderer) {
		s.ExpireShot()
	}
}
