package timing

import "time"

// Clock pairs the timer scheduler with the refresh-cycle queue. The game loop
// calls Tick once per update: timers due inside the frame fire first, then the
// frame callbacks run against the new time.
type Clock struct {
	Timers *Scheduler
	Frames *FrameQueue
}

func NewClock() *Clock {
	return &Clock{
		Timers: NewScheduler(),
		Frames: NewFrameQueue(),
	}
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Duration {
	return c.Timers.Now()
}

// Tick advances the clock by one frame.
func (c *Clock) Tick(frame time.Duration) {
	c.Timers.Advance(frame)
	c.Frames.Flush(c.Timers.Now())
}

// NewArena returns an arena bound to this clock.
func (c *Clock) NewArena() *Arena {
	return NewArena(c.Timers, c.Frames)
}
