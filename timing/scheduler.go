// Package timing provides the virtual clock that drives every animation in the
// game loop: one-shot and periodic timers, per-tick frame callbacks and arenas
// that own a component's scheduled work.
package timing

import (
	"container/heap"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer struct {
	deadline time.Duration
	period   time.Duration // 0 for one-shot timers
	seq      uint64
	index    int // position in the heap, -1 once fired or stopped
	fn       func()
	s        *Scheduler
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t == nil || t.index < 0 {
		return false
	}
	heap.Remove(&t.s.queue, t.index)
	t.index = -1
	return true
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool {
	return t != nil && t.index >= 0
}

// Deadline returns the scheduler time of the next firing.
func (t *Timer) Deadline() time.Duration {
	return t.deadline
}

// Scheduler is a deterministic clock advanced explicitly by the game loop.
// Callbacks run on the caller's goroutine in deadline order; timers sharing a
// deadline run in the order they were scheduled.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the elapsed virtual time. Inside a callback it equals the
// callback's deadline exactly.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of scheduled timers.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After schedules fn to run once, d from now. Negative delays are treated as zero.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.schedule(d, 0, fn)
}

// Every schedules fn to run every d, first firing d from now.
// A non-positive period panics: it would never let the clock advance.
func (s *Scheduler) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		panic("timing: non-positive period")
	}
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(d, period time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{
		deadline: s.now + d,
		period:   period,
		seq:      s.seq,
		fn:       fn,
		s:        s,
	}
	heap.Push(&s.queue, t)
	return t
}

// Advance moves the clock forward by dt, firing every timer whose deadline
// falls inside the window. Timers scheduled by callbacks fire in the same call
// when their deadline is reached. It returns the number of callbacks run.
// A negative dt is ignored and fires nothing; Advance(0) runs timers already due.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		return 0
	}
	target := s.now + dt
	fired := 0
	for len(s.queue) > 0 && s.queue[0].deadline <= target {
		t := s.queue[0]
		s.now = t.deadline
		if t.period > 0 {
			t.deadline += t.period
			heap.Fix(&s.queue, 0)
		} else {
			heap.Pop(&s.queue)
		}
		t.fn()
		fired++
	}
	s.now = target
	return fired
}

type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline != q[j].deadline {
		return q[i].deadline < q[j].deadline
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
