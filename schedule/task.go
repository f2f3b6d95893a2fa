// Package schedule provides a cancellable delayed action: a single pending
// run that callers replace on every qualifying event and cancel on teardown.
package schedule

import (
	"sync"
	"time"
)

// Task debounces a function: Reset arms (or re-arms) the timer, and the
// function runs once the delay elapses with no further Reset. The zero delay
// is not usable; construct with NewTask.
type Task struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
	done  bool
}

func NewTask(delay time.Duration, fn func()) *Task {
	return &Task{delay: delay, fn: fn}
}

// Reset schedules the action after the configured delay, replacing any
// pending run. Calling Reset after Stop is a no-op.
func (t *Task) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, t.fn)
}

// Cancel drops the pending run, if any. The task stays usable.
func (t *Task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Flush runs the action immediately if one is pending.
func (t *Task) Flush() {
	t.mu.Lock()
	pending := t.timer != nil && t.timer.Stop()
	t.timer = nil
	t.mu.Unlock()
	if pending {
		t.fn()
	}
}

// Stop cancels any pending run and retires the task.
func (t *Task) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
