package backend

import (
	"sync"
	"time"
)

// throttle spaces out preference reloads so an editor's save burst produces
// a single rebuild.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval}
}

// wait blocks until at least interval has passed since the previous call
// returned.
func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.last.IsZero() {
		if remaining := t.interval - time.Since(t.last); remaining > 0 {
			time.Sleep(remaining)
		}
	} else {
		time.Sleep(t.interval)
	}
	t.last = time.Now()
}
