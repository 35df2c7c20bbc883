package wikimark

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into a single callback once the
// burst has been quiet for the given delay. Single slot: a new trigger
// replaces the pending one, it never queues.
type Debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebouncer returns a ready debouncer.
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// Trigger schedules fn to run after delay, replacing any pending callback.
// A delay of 0 still defers fn to the timer goroutine, keeping the call
// sites non-reentrant.
func (d *Debouncer) Trigger(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, fn)
}

// Stop cancels any pending callback and rejects further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
