package watcher

import (
	"fmt"
	"time"
)

// Operation represents a file system operation type.
type Operation int

const (
	// OpCreate indicates a new file or directory was created.
	OpCreate Operation = iota
	// OpModify indicates an existing file was modified.
	OpModify
	// OpDelete indicates a file or directory was deleted.
	OpDelete
	// OpRename indicates a file or directory was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpModify:
		return "MODIFY"
	case OpDelete:
		return "DELETE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// AssetEvent is a change below the asset root.
type AssetEvent struct {
	// Path is relative to the asset root.
	Path      string
	Operation Operation
	IsDir     bool
	Timestamp time.Time
}

// Options configures an AssetWatcher.
type Options struct {
	// DebounceWindow coalesces bursts such as an unpacked icon archive.
	// Default: 300ms
	DebounceWindow time.Duration

	// PollInterval is the scan interval in polling mode.
	// Default: 5s
	PollInterval time.Duration

	// ForcePolling skips fsnotify.
	ForcePolling bool
}

// DefaultOptions returns the default watcher options.
func DefaultOptions() Options {
	return Options{
		DebounceWindow: DefaultDebounceWindow,
		PollInterval:   5 * time.Second,
	}
}

// Validate rejects negative durations.
func (o Options) Validate() error {
	if o.DebounceWindow < 0 {
		return fmt.Errorf("debounce window must not be negative: %s", o.DebounceWindow)
	}
	if o.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative: %s", o.PollInterval)
	}
	return nil
}

// WithDefaults returns options with defaults applied for zero values.
func (o Options) WithDefaults() Options {
	defaults := DefaultOptions()
	if o.DebounceWindow == 0 {
		o.DebounceWindow = defaults.DebounceWindow
	}
	if o.PollInterval == 0 {
		o.PollInterval = defaults.PollInterval
	}
	return o
}
