package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fps-cuber/physics"
)

// IntentKind identifies a deferred world mutation
type IntentKind uint8

const (
	// IntentBulletHit resolves a bullet's first contact
	IntentBulletHit IntentKind = iota
	// IntentPlayerContact evaluates a player/target contact for damage
	IntentPlayerContact
	// IntentKillingFloor ends the game
	IntentKillingFloor
)

func (k IntentKind) String() string {
	switch k {
	case IntentBulletHit:
		return "bullet_hit"
	case IntentPlayerContact:
		return "player_contact"
	case IntentKillingFloor:
		return "killing_floor"
	default:
		return "unknown"
	}
}

// Intent is a mutation requested from inside a physics step
type Intent struct {
	Kind   IntentKind
	Source *Entity            // bullet for IntentBulletHit
	Other  physics.BodyHandle // body touched
	Normal mgl64.Vec3         // contact normal, from the handler's own body toward Other
}

// IntentQueue collects intents during a step for the loop to drain afterwards
// Single goroutine: handlers push from inside Step, the loop drains after Step returns
type IntentQueue struct {
	pending []Intent
	spare   []Intent
}

// NewIntentQueue creates a queue with initial capacity
func NewIntentQueue(capacity int) *IntentQueue {
	return &IntentQueue{
		pending: make([]Intent, 0, capacity),
		spare:   make([]Intent, 0, capacity),
	}
}

// Push appends an intent, never drops
func (q *IntentQueue) Push(in Intent) {
	q.pending = append(q.pending, in)
}

// Drain calls fn for each pending intent in FIFO order
// Intents pushed by fn are processed in the same drain
func (q *IntentQueue) Drain(fn func(Intent)) int {
	n := 0
	for len(q.pending) > 0 {
		batch := q.pending
		q.pending = q.spare[:0]
		for i := range batch {
			fn(batch[i])
			n++
		}
		clear(batch)
		q.spare = batch[:0]
	}
	return n
}

// Len returns the number of pending intents
func (q *IntentQueue) Len() int {
	return len(q.pending)
}
