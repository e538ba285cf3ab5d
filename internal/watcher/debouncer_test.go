package watcher

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan T, timeout time.Duration) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(timeout):
		t.Fatal("timeout waiting for debounced value")
	}
	var zero T
	return zero
}

func assertNothing[T any](t *testing.T, ch <-chan T, wait time.Duration) {
	t.Helper()
	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("unexpected value: %v", v)
		}
	case <-time.After(wait):
	}
}

func TestDebouncer_SingleValue_PassesThrough(t *testing.T) {
	// Given: a debouncer with short window
	d := NewDebouncer[string](30 * time.Millisecond)
	defer d.Stop()

	// When: a single value is added
	d.Add("add")

	// Then: it comes out after the window
	assert.Equal(t, "add", receive(t, d.Output(), time.Second))
}

func TestDebouncer_Burst_EmitsOnlyLast(t *testing.T) {
	// Given: a debouncer
	d := NewDebouncer[string](50 * time.Millisecond)
	defer d.Stop()

	// When: keystrokes arrive faster than the window
	for _, q := range []string{"a", "ad", "add", "add-", "add-i"} {
		d.Add(q)
		time.Sleep(5 * time.Millisecond)
	}

	// Then: exactly one value, the last one
	assert.Equal(t, "add-i", receive(t, d.Output(), time.Second))
	assertNothing(t, d.Output(), 150*time.Millisecond)
}

func TestDebouncer_TimerResetsOnEachAdd(t *testing.T) {
	// Given: a 100ms window
	d := NewDebouncer[int](100 * time.Millisecond)
	defer d.Stop()

	// When: values keep arriving every 20ms for ~100ms
	start := time.Now()
	for i := 0; i < 5; i++ {
		d.Add(i)
		time.Sleep(20 * time.Millisecond)
	}
	v := receive(t, d.Output(), time.Second)

	// Then: the emission waited for the quiet period after the last Add
	assert.Equal(t, 4, v)
	assert.GreaterOrEqual(t, time.Since(start), 180*time.Millisecond)
}

func TestDebouncer_StaleValueReplacedNotQueued(t *testing.T) {
	// Given: a debouncer nobody is reading from
	d := NewDebouncer[string](10 * time.Millisecond)
	defer d.Stop()

	// When: two separate bursts both complete before the consumer reads
	d.Add("first")
	time.Sleep(60 * time.Millisecond)
	d.Add("second")
	time.Sleep(60 * time.Millisecond)

	// Then: only the newest value is waiting
	assert.Equal(t, "second", receive(t, d.Output(), time.Second))
	assertNothing(t, d.Output(), 50*time.Millisecond)
}

func TestDebouncer_Flush_EmitsImmediately(t *testing.T) {
	d := NewDebouncer[string](time.Hour)
	defer d.Stop()

	d.Add("now")
	assert.True(t, d.Pending())
	d.Flush()

	assert.Equal(t, "now", receive(t, d.Output(), 100*time.Millisecond))
	assert.False(t, d.Pending())
}

func TestDebouncer_Flush_NothingPending(t *testing.T) {
	d := NewDebouncer[string](10 * time.Millisecond)
	defer d.Stop()

	d.Flush()

	assertNothing(t, d.Output(), 50*time.Millisecond)
}

func TestDebouncer_FlushSupersedesTimer(t *testing.T) {
	d := NewDebouncer[string](30 * time.Millisecond)
	defer d.Stop()

	d.Add("x")
	d.Flush()
	assert.Equal(t, "x", receive(t, d.Output(), 100*time.Millisecond))

	// The timer armed by Add must not emit a second time.
	assertNothing(t, d.Output(), 100*time.Millisecond)
}

func TestDebouncer_Cancel_DropsPending(t *testing.T) {
	d := NewDebouncer[string](20 * time.Millisecond)
	defer d.Stop()

	d.Add("dropped")
	d.Cancel()

	assertNothing(t, d.Output(), 80*time.Millisecond)
	assert.False(t, d.Pending())
}

func TestDebouncer_Stop_ClosesOutput(t *testing.T) {
	// Given: a debouncer with a pending value
	d := NewDebouncer[string](20 * time.Millisecond)
	d.Add("pending")

	// When: stopped before the window ends
	d.Stop()

	// Then: the channel closes without emitting, and later calls are no-ops
	_, ok := <-d.Output()
	assert.False(t, ok)
	d.Add("ignored")
	d.Flush()
	d.Stop()
}

func TestDebouncer_DefaultWindow(t *testing.T) {
	assert.Equal(t, 300*time.Millisecond, NewDebouncer[int](0).Window())
	assert.Equal(t, DefaultDebounceWindow, NewDebouncer[int](-time.Second).Window())
	assert.Equal(t, 5*time.Millisecond, NewDebouncer[int](5*time.Millisecond).Window())
}

func TestDebouncer_ConcurrentAdd(t *testing.T) {
	d := NewDebouncer[int](20 * time.Millisecond)
	defer d.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			d.Add(v)
		}(i)
	}
	wg.Wait()

	receive(t, d.Output(), time.Second)
	assertNothing(t, d.Output(), 80*time.Millisecond)
}
