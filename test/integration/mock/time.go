package mock

import (
	"sync"
	"time"
)

// Clock is a controllable clock handed to the dashboard use case so
// scenarios can pin "now" and get deterministic period filtering and
// monthly rollups. Until a time is set it behaves like the real clock.
type Clock struct {
	mu     sync.Mutex
	fixed  time.Time
	pinned bool
}

func NewClock() *Clock {
	return &Clock{}
}

// Set pins the clock to the given instant.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fixed = now
	c.pinned = true
}

// Reset returns the clock to real time.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pinned = false
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pinned {
		return c.fixed
	}
	return time.Now().UTC()
}
