package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fps-cuber/config"
	"github.com/lixenwraith/fps-cuber/game"
)

// holdFire is the hold slot after the movement keys
const holdFire = int(game.KeyJump) + 1

// Machine turns terminal events into game input events
// Terminals report presses only, so a held key is one that keeps repeating:
// each press extends a release deadline and Tick emits the key-up once it passes
type Machine struct {
	cfg      config.InputConfig
	keyTable *KeyTable

	locked bool

	held     [holdFire + 1]bool
	deadline [holdFire + 1]time.Time

	mouseFire bool
	fireOut   bool // last fire state reported to the game

	mouseSeen      bool
	mouseX, mouseY int

	out []game.InputEvent
}

// NewMachine creates a new input machine with default bindings
func NewMachine(cfg config.InputConfig) *Machine {
	return &Machine{
		cfg:      cfg,
		keyTable: DefaultKeyTable(),
		out:      make([]game.InputEvent, 0, 8),
	}
}

// Locked reports whether the pointer is captured
func (m *Machine) Locked() bool {
	return m.locked
}

// Process parses a terminal event
// The returned slice is reused by the next call
func (m *Machine) Process(ev tcell.Event, now time.Time) ([]game.InputEvent, Command) {
	m.out = m.out[:0]
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := m.processKey(ev, now)
		return m.out, cmd
	case *tcell.EventMouse:
		m.processMouse(ev)
	}
	return m.out, CommandNone
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) Command {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok {
		return CommandNone
	}

	switch entry.Behavior {
	case BehaviorMove:
		m.press(int(entry.Key), now)
	case BehaviorFire:
		m.press(holdFire, now)
	case BehaviorLook:
		m.out = append(m.out, game.InputEvent{
			Kind:   game.InputLook,
			DYaw:   entry.DYaw * m.cfg.LookStep,
			DPitch: entry.DPitch * m.cfg.LookStep,
		})
	case BehaviorLockToggle:
		m.setLocked(!m.locked)
	case BehaviorCommand:
		return entry.Command
	}
	return CommandNone
}

// press starts or extends a hold
func (m *Machine) press(slot int, now time.Time) {
	if m.held[slot] {
		m.deadline[slot] = now.Add(m.cfg.RepeatHold)
		return
	}
	m.held[slot] = true
	m.deadline[slot] = now.Add(m.cfg.InitialHold)
	if slot == holdFire {
		m.syncFire()
		return
	}
	m.out = append(m.out, game.InputEvent{Kind: game.InputKeyDown, Key: game.Key(slot)})
}

func (m *Machine) release(slot int) {
	if !m.held[slot] {
		return
	}
	m.held[slot] = false
	if slot == holdFire {
		m.syncFire()
		return
	}
	m.out = append(m.out, game.InputEvent{Kind: game.InputKeyUp, Key: game.Key(slot)})
}

// syncFire reports changes of the combined key and mouse fire state
func (m *Machine) syncFire() {
	fire := m.held[holdFire] || m.mouseFire
	if fire == m.fireOut {
		return
	}
	m.fireOut = fire
	if fire {
		m.out = append(m.out, game.InputEvent{Kind: game.InputFireDown})
	} else {
		m.out = append(m.out, game.InputEvent{Kind: game.InputFireUp})
	}
}

func (m *Machine) setLocked(locked bool) {
	if m.locked == locked {
		return
	}
	m.locked = locked
	if locked {
		m.mouseSeen = false
		m.out = append(m.out, game.InputEvent{Kind: game.InputLock})
		return
	}
	for slot := range m.held {
		m.release(slot)
	}
	m.mouseFire = false
	m.syncFire()
	m.out = append(m.out, game.InputEvent{Kind: game.InputUnlock})
}

func (m *Machine) processMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	if !m.locked {
		// First click captures the pointer without firing
		if pressed {
			m.setLocked(true)
			m.mouseX, m.mouseY, m.mouseSeen = x, y, true
		}
		return
	}

	if m.mouseSeen {
		dx, dy := x-m.mouseX, y-m.mouseY
		if dx != 0 || dy != 0 {
			m.out = append(m.out, game.InputEvent{
				Kind:   game.InputLook,
				DYaw:   float64(dx) * m.cfg.MouseSensitivity,
				DPitch: -float64(dy) * m.cfg.MouseSensitivity * 2, // rows are twice as tall as columns
			})
		}
	}
	m.mouseX, m.mouseY, m.mouseSeen = x, y, true

	if pressed != m.mouseFire {
		m.mouseFire = pressed
		m.syncFire()
	}
}

// Tick releases holds whose deadline has passed
func (m *Machine) Tick(now time.Time) []game.InputEvent {
	m.out = m.out[:0]
	for slot := range m.held {
		if m.held[slot] && !now.Before(m.deadline[slot]) {
			m.release(slot)
		}
	}
	return m.out
}
