// Package clock is the time source for voucher, entity and idempotency timestamps.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reports wall time in UTC, truncated to microseconds to match timestamptz.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// MockClock stands still until moved with Set or Add.
type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t.UTC()}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t.UTC()
}

// Add moves the clock forward, e.g. past an upload key's expiry.
func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
