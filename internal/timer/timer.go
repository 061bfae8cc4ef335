package timer

import "time"

// Handle is a scheduled callback. Stop is idempotent and safe to call after the callback fired.
type Handle interface {
	Stop()
}

// Scheduler runs callbacks once after a delay, each on its own goroutine.
type Scheduler interface {
	Schedule(after time.Duration, fn func()) Handle
}

type realScheduler struct{}

func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) Schedule(after time.Duration, fn func()) Handle {
	return afterFuncHandle{t: time.AfterFunc(after, fn)}
}

type afterFuncHandle struct {
	t *time.Timer
}

func (h afterFuncHandle) Stop() {
	h.t.Stop()
}
