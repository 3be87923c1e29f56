// Package watcher implements source tree watching for the watch command.
package watcher

import (
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces rapid file system events into one batched callback.
// Paths added within the settle window are deduplicated; each settled window
// produces a single callback invocation on the timer's goroutine.
type Debouncer struct {
	mu      sync.Mutex
	pending map[unique.Handle[string]]struct{}
	timer   *time.Timer
	window  time.Duration
	fn      func(paths []string)
}

// NewDebouncer creates a Debouncer with the given settle window.
func NewDebouncer(window time.Duration, fn func(paths []string)) *Debouncer {
	return &Debouncer{
		pending: make(map[unique.Handle[string]]struct{}),
		window:  window,
		fn:      fn,
	}
}

// Add records a changed path and restarts the settle window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// Stop cancels the pending window and discards collected paths. A window
// that already fired is unaffected.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = make(map[unique.Handle[string]]struct{})
}

// fire drains the pending set when the settle window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()

		return
	}

	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}

	d.pending = make(map[unique.Handle[string]]struct{})
	d.timer = nil
	d.mu.Unlock()

	if d.fn != nil {
		d.fn(paths)
	}
}
