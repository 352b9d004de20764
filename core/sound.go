package core

// SoundType represents the one-shot cues of the game
type SoundType int

const (
	SoundShoot SoundType = iota // Bullet fired
	SoundHit                    // Target destroyed
	SoundJump                   // Jump impulse
	SoundOof                    // Player damaged
	SoundDead                   // Game over
	SoundTypeCount
)

func (s SoundType) String() string {
	names := [...]string{"shoot", "hit", "jump", "oof", "dead"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}
