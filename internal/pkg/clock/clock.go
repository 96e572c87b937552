package clock

import (
	"sync"
	"time"
)

// Clock is the only source of "now" for use cases; decisions, borrow and
// return stamps all read it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

// Now is truncated to the microsecond precision of timestamptz so a value
// read back from postgres compares equal to the one written.
func (systemClock) Now() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
