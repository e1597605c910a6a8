package runtime

import (
	"sync"
	"time"
)

// ScheduledTask runs fn once after a delay unless it is cancelled first.
type ScheduledTask struct {
	Deadline time.Time

	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool
}

func Schedule(delay time.Duration, fn func()) *ScheduledTask {
	t := &ScheduledTask{Deadline: time.Now().Add(delay)}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		cancelled := t.cancelled
		t.mu.Unlock()
		if !cancelled {
			fn()
		}
	})
	return t
}

// Cancel stops the task. It returns false when fn already started or the task was cancelled before.
func (t *ScheduledTask) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancelled {
		return false
	}
	t.cancelled = true
	return t.timer.Stop()
}
