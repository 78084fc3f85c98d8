package harness

import "time"

// Clock wraps the wall clock so tests can pin the time a benchmark observes.
type Clock struct {
	faked bool
	time  time.Time
}

// Set fixes the time on the clock.
func (c *Clock) Set(t time.Time) { c.faked = true; c.time = t }

// Advance moves a faked clock forward.
func (c *Clock) Advance(d time.Duration) { c.Set(c.Time().Add(d)) }

// Sync returns the clock to real time.
func (c *Clock) Sync() { c.faked = false }

func (c *Clock) Time() time.Time {
	if c.faked {
		return c.time
	}
	return time.Now()
}
