package game

import (
	"sync"
	"time"
)

// Clock supplies the time base for fire gating and timers
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// Now returns the current time with monotonic clock reading
func (TimeProvider) Now() time.Time {
	return time.Now()
}

// ManualTimeProvider is a clock advanced explicitly, for tests and headless runs
type ManualTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualTimeProvider creates a manual clock starting at startTime
func NewManualTimeProvider(startTime time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{currentTime: startTime}
}

// Now returns the current manual time
func (m *ManualTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time
func (m *ManualTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
