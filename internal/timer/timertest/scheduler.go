// Package timertest provides a manually driven timer.Scheduler for tests.
package timertest

import (
	"sort"
	"sync"
	"time"

	"github.com/foxseedlab/syncbot/internal/timer"
)

// Scheduler records scheduled callbacks and runs them only when the test asks it to.
type Scheduler struct {
	mu      sync.Mutex
	seq     int
	pending []*Timer
}

// Timer is one scheduled callback.
type Timer struct {
	After time.Duration

	seq     int
	fn      func()
	mu      sync.Mutex
	stopped bool
	fired   bool
}

func New() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Schedule(after time.Duration, fn func()) timer.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &Timer{After: after, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

func (t *Timer) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *Timer) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Pending returns the timers that are neither stopped nor fired, ordered by delay then creation.
func (s *Scheduler) Pending() []*Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Timer, 0, len(s.pending))
	for _, t := range s.pending {
		t.mu.Lock()
		live := !t.stopped && !t.fired
		t.mu.Unlock()
		if live {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].After != out[j].After {
			return out[i].After < out[j].After
		}
		return out[i].seq < out[j].seq
	})
	return out
}

// Fire runs the callback synchronously unless it was stopped or already fired.
func (t *Timer) Fire() bool {
	t.mu.Lock()
	if t.stopped || t.fired {
		t.mu.Unlock()
		return false
	}
	t.fired = true
	t.mu.Unlock()
	t.fn()
	return true
}

// FireUpTo fires, in delay order, every pending timer whose delay is at most d.
// Timers scheduled by the fired callbacks are not fired in the same call.
func (s *Scheduler) FireUpTo(d time.Duration) int {
	n := 0
	for _, t := range s.Pending() {
		if t.After > d {
			continue
		}
		if t.Fire() {
			n++
		}
	}
	return n
}

// FireAll fires every pending timer regardless of delay.
func (s *Scheduler) FireAll() int {
	n := 0
	for _, t := range s.Pending() {
		if t.Fire() {
			n++
		}
	}
	return n
}
