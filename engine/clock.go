package engine

import (
	"sync"
	"time"
)

// TimeProvider is the clock animation phases are measured against
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock, monotonic reading included
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the real-time clock used by the app loop
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns time.Now()
func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually stepped clock for tests
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider creates a mock clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the frozen time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t
func (m *MockTimeProvider) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}
