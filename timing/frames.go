package timing

import "time"

// FrameRequest is a handle to a pending refresh-cycle callback.
type FrameRequest struct {
	fn        func(now time.Duration)
	cancelled bool
	done      bool
}

// Cancel drops the request if it has not run yet.
func (r *FrameRequest) Cancel() {
	if r != nil {
		r.cancelled = true
	}
}

// Pending reports whether the callback is still waiting for the next flush.
func (r *FrameRequest) Pending() bool {
	return r != nil && !r.cancelled && !r.done
}

// FrameQueue collects callbacks for the next visual refresh. Each flush runs
// only the requests made before it started; requests made from inside a
// callback wait for the following flush.
type FrameQueue struct {
	pending []*FrameRequest
	spare   []*FrameRequest
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// Request schedules fn for the next flush.
func (q *FrameQueue) Request(fn func(now time.Duration)) *FrameRequest {
	r := &FrameRequest{fn: fn}
	q.pending = append(q.pending, r)
	return r
}

// Len returns the number of requests waiting, cancelled ones included.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Flush runs the queued callbacks and returns how many ran.
func (q *FrameQueue) Flush(now time.Duration) int {
	batch := q.pending
	q.pending = q.spare[:0]
	ran := 0
	for i, r := range batch {
		batch[i] = nil
		if r.cancelled {
			continue
		}
		r.done = true
		r.fn(now)
		ran++
	}
	q.spare = batch[:0]
	return ran
}
