package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the quiet period before a value is emitted.
const DefaultDebounceWindow = 300 * time.Millisecond

// Debouncer delays values until they stop changing for one window.
//
// Every Add restarts the timer; only a timer that runs out uninterrupted
// emits. The output channel holds at most one value: a value nobody has
// read yet is replaced by the newer one, never queued behind it.
type Debouncer[T any] struct {
	window time.Duration
	output chan T

	mu         sync.Mutex
	timer      *time.Timer
	gen        uint64
	pending    T
	hasPending bool
	stopped    bool
}

// NewDebouncer creates a debouncer. A non-positive window uses
// DefaultDebounceWindow.
func NewDebouncer[T any](window time.Duration) *Debouncer[T] {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer[T]{
		window: window,
		output: make(chan T, 1),
	}
}

// Window returns the debounce window.
func (d *Debouncer[T]) Window() time.Duration {
	return d.window
}

// Add records v as the latest value and restarts the timer.
func (d *Debouncer[T]) Add(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = v
	d.hasPending = true
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.fire(gen)
	})
}

// fire emits the pending value unless a later Add, Flush or Cancel
// superseded the timer that called it. Stop does not prevent an
// AfterFunc that already started, hence the generation check.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || gen != d.gen || !d.hasPending {
		return
	}
	d.emitLocked()
}

// Flush emits the pending value now instead of waiting for the timer.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || !d.hasPending {
		return
	}
	d.invalidateLocked()
	d.emitLocked()
}

// Cancel drops the pending value without emitting it.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.invalidateLocked()
	var zero T
	d.pending = zero
	d.hasPending = false
}

// Pending reports whether a value is waiting for its timer.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasPending
}

func (d *Debouncer[T]) invalidateLocked() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// emitLocked replaces any unread value with the pending one. All sends
// happen under mu, so after the drain the send cannot block.
func (d *Debouncer[T]) emitLocked() {
	v := d.pending
	var zero T
	d.pending = zero
	d.hasPending = false

	select {
	case <-d.output:
	default:
	}
	d.output <- v
}

// Output returns the channel of debounced values. It is closed by Stop.
func (d *Debouncer[T]) Output() <-chan T {
	return d.output
}

// Stop stops the debouncer and closes the output channel. A pending value
// is discarded. Safe to call multiple times.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true
	d.invalidateLocked()
	close(d.output)
}
