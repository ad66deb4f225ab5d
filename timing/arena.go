package timing

import "time"

// compactAt is the handle count above which finished handles are pruned.
const compactAt = 32

// Arena owns the scheduled work of a single component. Cancel stops all of it;
// Release does the same and makes the arena refuse new work, which is what a
// scene does when it is torn down.
type Arena struct {
	timers   *Scheduler
	frames   *FrameQueue
	owned    []*Timer
	requests []*FrameRequest
	released bool
}

func NewArena(timers *Scheduler, frames *FrameQueue) *Arena {
	return &Arena{timers: timers, frames: frames}
}

// Now returns the scheduler time.
func (a *Arena) Now() time.Duration {
	return a.timers.Now()
}

// After schedules a one-shot callback. It returns nil once the arena is released.
func (a *Arena) After(d time.Duration, fn func()) *Timer {
	if a.released {
		return nil
	}
	t := a.timers.After(d, fn)
	a.owned = append(a.owned, t)
	a.compact()
	return t
}

// Every schedules a periodic callback. It returns nil once the arena is released.
func (a *Arena) Every(d time.Duration, fn func()) *Timer {
	if a.released {
		return nil
	}
	t := a.timers.Every(d, fn)
	a.owned = append(a.owned, t)
	a.compact()
	return t
}

// Frame requests a callback on the next refresh cycle.
func (a *Arena) Frame(fn func(now time.Duration)) *FrameRequest {
	if a.released || a.frames == nil {
		return nil
	}
	r := a.frames.Request(fn)
	a.requests = append(a.requests, r)
	a.compact()
	return r
}

// Live returns the number of timers and frame requests that have yet to run.
func (a *Arena) Live() int {
	n := 0
	for _, t := range a.owned {
		if t.Active() {
			n++
		}
	}
	for _, r := range a.requests {
		if r.Pending() {
			n++
		}
	}
	return n
}

// Cancel stops every pending timer and frame request. The arena stays usable.
func (a *Arena) Cancel() {
	for _, t := range a.owned {
		t.Stop()
	}
	for _, r := range a.requests {
		r.Cancel()
	}
	a.owned = a.owned[:0]
	a.requests = a.requests[:0]
}

// Release cancels everything and rejects later scheduling.
func (a *Arena) Release() {
	a.Cancel()
	a.released = true
}

// Released reports whether Release was called.
func (a *Arena) Released() bool {
	return a.released
}

func (a *Arena) compact() {
	if len(a.owned) > compactAt {
		live := a.owned[:0]
		for _, t := range a.owned {
			if t.Active() {
				live = append(live, t)
			}
		}
		clear(a.owned[len(live):])
		a.owned = live
	}
	if len(a.requests) > compactAt {
		live := a.requests[:0]
		for _, r := range a.requests {
			if r.Pending() {
				live = append(live, r)
			}
		}
		clear(a.requests[len(live):])
		a.requests = live
	}
}
