package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fps-cuber/game"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMove
	BehaviorFire
	BehaviorLook
	BehaviorLockToggle
	BehaviorCommand
)

// Command is a session-level action handled outside the game loop
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
	CommandMute
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandRestart:
		return "restart"
	case CommandMute:
		return "mute"
	default:
		return "none"
	}
}

// KeyEntry describes a key's behavior without function pointers
// Look entries carry unit steps scaled by the configured look step
type KeyEntry struct {
	Behavior KeyBehavior
	Key      game.Key
	DYaw     float64
	DPitch   float64
	Command  Command
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Behavior: BehaviorCommand, Command: CommandQuit},
			tcell.KeyCtrlQ:  {Behavior: BehaviorCommand, Command: CommandQuit},
			tcell.KeyEscape: {Behavior: BehaviorLockToggle},
			tcell.KeyLeft:   {Behavior: BehaviorLook, DYaw: -1},
			tcell.KeyRight:  {Behavior: BehaviorLook, DYaw: 1},
			tcell.KeyUp:     {Behavior: BehaviorLook, DPitch: 1},
			tcell.KeyDown:   {Behavior: BehaviorLook, DPitch: -1},
			tcell.KeyEnter:  {Behavior: BehaviorFire},
		},

		Runes: map[rune]KeyEntry{
			'w': {Behavior: BehaviorMove, Key: game.KeyForward},
			's': {Behavior: BehaviorMove, Key: game.KeyBack},
			'a': {Behavior: BehaviorMove, Key: game.KeyLeft},
			'd': {Behavior: BehaviorMove, Key: game.KeyRight},
			' ': {Behavior: BehaviorMove, Key: game.KeyJump},
			'f': {Behavior: BehaviorFire},
			'm': {Behavior: BehaviorCommand, Command: CommandMute},
			'r': {Behavior: BehaviorCommand, Command: CommandRestart},
			'q': {Behavior: BehaviorCommand, Command: CommandQuit},
		},
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[toLower(ev.Rune())]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
