// Package debounce delays an action until its trigger has been quiet for a while.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used for search input.
const DefaultDelay = 300 * time.Millisecond

// Debouncer runs the most recently scheduled function once no new call has arrived
// for the configured duration. A new call stops the pending timer, so a superseded
// function never runs.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// New creates a debouncer. A non-positive duration falls back to DefaultDelay.
func New(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDelay
	}
	return &Debouncer{duration: duration}
}

// Debounce schedules fn, replacing any call that has not fired yet.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops the pending call, if any. It reports whether a call was stopped
// before it fired.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil

	return stopped
}

// Immediate cancels the pending call and runs fn on the caller's goroutine.
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}

// Duration returns the quiet period.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
