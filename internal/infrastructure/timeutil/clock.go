// Package timeutil abstracts the system clock so time-dependent behavior,
// such as cache expiry and search timing, can be driven deterministically
// in tests.
package timeutil

import (
	"time"
)

// Clock supplies the current time. Production code uses RealClock; tests
// substitute a MockClock to control expiry and timing assertions.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed time that tests move forward explicitly.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a mock clock pinned to the given time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 time string.
// Panics on a malformed string, so it is only suitable for tests.
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{current: t}
}

// Now returns the clock's pinned time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set pins the clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// AdvanceMinutes moves the clock forward by whole minutes, the usual
// granularity for cache TTL tests.
func (m *MockClock) AdvanceMinutes(minutes int) {
	m.Advance(time.Duration(minutes) * time.Minute)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
