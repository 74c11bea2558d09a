// Package host holds the pieces of the surrounding environment the
// simulations plug into: a display-refresh scheduler, window events and the
// container region a component mounts its drawing surface into.
package host

import "time"

// FrameFunc is one tick of a component. ts is the host's monotonic clock.
type FrameFunc func(ts time.Duration)

// FrameID identifies a queued frame request. The zero value is never issued.
type FrameID uint64

// Frames is what a component needs from the refresh scheduler.
type Frames interface {
	Request(fn FrameFunc) FrameID
	Cancel(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn FrameFunc
}

// Scheduler is a cooperative, single-threaded frame scheduler. A callback
// fires at most once per request; a component that wants to keep animating
// requests its next frame from inside the callback.
type Scheduler struct {
	nextID  FrameID
	pending []frameRequest
	running []frameRequest // batch of the Run in progress
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Request queues fn for the next Run.
func (s *Scheduler) Request(fn FrameFunc) FrameID {
	s.nextID++
	s.pending = append(s.pending, frameRequest{id: s.nextID, fn: fn})
	return s.nextID
}

// Cancel drops a queued request. Unknown or already fired ids are ignored.
// Cancelling a request of the Run in progress keeps it from firing.
func (s *Scheduler) Cancel(id FrameID) {
	if id == 0 {
		return
	}
	for i, r := range s.pending {
		if r.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
	for i := range s.running {
		if s.running[i].id == id {
			s.running[i].fn = nil
			return
		}
	}
}

// Run fires every callback queued before the call, in request order, and
// returns how many fired. Requests made during Run wait for the next one.
func (s *Scheduler) Run(ts time.Duration) int {
	s.running, s.pending = s.pending, nil
	fired := 0
	for i := range s.running {
		fn := s.running[i].fn
		if fn == nil {
			continue
		}
		s.running[i].fn = nil
		fn(ts)
		fired++
	}
	s.running = nil
	return fired
}

// Pending reports how many requests wait for the next Run.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
