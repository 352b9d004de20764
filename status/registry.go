package status

import "sync/atomic"

// Well-known metric keys written by the simulation loop
const (
	KeyFrames      = "loop.frames"
	KeyBodies      = "physics.bodies"
	KeyTargets     = "world.targets"
	KeyBullets     = "world.bullets"
	KeyIntents     = "loop.intents"
	KeyStepMillis  = "physics.step_ms"
	KeyFrameMillis = "loop.frame_ms"
)

// Registry is the central metrics facade
// The loop caches pointers at construction and writes atomics directly; renderers and logs read them
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot copies every metric into a plain map, keys sorted by Range
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = float64(ptr.Load())
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		out[key] = ptr.Get()
	})
	return out
}
