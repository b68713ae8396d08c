package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// After advances the mock time by the requested duration and fires immediately
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	waits       []time.Duration
	stepCost    time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time, then advances it by the configured step cost
// so consecutive readings inside one tick observe elapsed work
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.currentTime
	m.currentTime = m.currentTime.Add(m.stepCost)
	return now
}

// After records the wait, advances time by d, and returns a fired channel
func (m *MockTimeProvider) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waits = append(m.waits, d)
	m.currentTime = m.currentTime.Add(d)

	ch := make(chan time.Time, 1)
	ch <- m.currentTime
	return ch
}

// SetStepCost makes every Now call consume d of mock time
func (m *MockTimeProvider) SetStepCost(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stepCost = d
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Waits returns the durations passed to After
func (m *MockTimeProvider) Waits() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.waits...)
}
