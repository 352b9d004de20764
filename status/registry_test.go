package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_GetReturnsStablePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyFrames)
	a.Add(3)
	assert.Same(t, a, r.Ints.Get(KeyFrames))
	assert.Equal(t, int64(3), r.Ints.Get(KeyFrames).Load())
}

func TestRegistry_Snapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTargets).Store(12)
	r.Floats.Get(KeyStepMillis).Set(1.5)

	snap := r.Snapshot()
	assert.Equal(t, map[string]float64{
		KeyTargets:    12,
		KeyStepMillis: 1.5,
	}, snap)
}

func TestMetricMap_ConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("shared").Set(2)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, 2.0, m.Get("shared").Get())
}
