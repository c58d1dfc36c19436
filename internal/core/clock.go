package core

import "time"

// Clock is the time source used by games for frame deltas and cooldowns.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when advanced. Tests use it to drive the
// simulation with exact deltas.
type ManualClock struct {
	t time.Time
}

// NewManualClock creates a clock frozen at a fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{t: time.Unix(1_700_000_000, 0)}
}

// Now returns the clock's current instant.
func (c *ManualClock) Now() time.Time {
	return c.t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
