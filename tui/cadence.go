package tui

import "time"

// cadence gates frame advances on elapsed wall-clock time.
// The first tick always advances; after that an advance happens once
// the configured interval has elapsed since the previous advance.
// A zero interval advances on every tick.
type cadence struct {
	interval time.Duration
	tp       TimeProvider

	last    time.Time
	started bool
}

func newCadence(interval time.Duration, tp TimeProvider) cadence {
	if interval < 0 {
		interval = 0
	}
	return cadence{interval: interval, tp: tp}
}

// tick reports whether the frame should advance now, recording the
// advance timestamp when it does
func (c *cadence) tick() bool {
	now := c.tp.Now()
	if c.started && c.interval > 0 && now.Sub(c.last) < c.interval {
		return false
	}
	c.started = true
	c.last = now
	return true
}

// reset returns the cadence to the never-advanced state
func (c *cadence) reset() {
	c.started = false
	c.last = time.Time{}
}
