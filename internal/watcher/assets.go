package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// AssetWatcher reports changes below an asset root. Bursts of events are
// coalesced through a Debouncer; onChange sees the last event of each
// burst.
type AssetWatcher struct {
	opts        Options
	onChange    func(AssetEvent)
	debouncer   *Debouncer[AssetEvent]
	fsWatcher   *fsnotify.Watcher
	pollWatcher *PollingWatcher
	useFsnotify bool

	mu       sync.RWMutex
	rootPath string
	stopCh   chan struct{}
	stopped  bool
}

// NewAssetWatcher creates a watcher that calls onChange after each burst
// of changes. It prefers fsnotify and falls back to polling.
func NewAssetWatcher(opts Options, onChange func(AssetEvent)) (*AssetWatcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback is required")
	}
	opts = opts.WithDefaults()

	w := &AssetWatcher{
		opts:      opts,
		onChange:  onChange,
		debouncer: NewDebouncer[AssetEvent](opts.DebounceWindow),
		stopCh:    make(chan struct{}),
	}

	if !opts.ForcePolling {
		fsw, err := fsnotify.NewWatcher()
		if err == nil {
			w.fsWatcher = fsw
			w.useFsnotify = true
			return w, nil
		}
		slog.Warn("fsnotify_unavailable_falling_back_to_polling", slog.String("error", err.Error()))
	}
	w.pollWatcher = NewPollingWatcher(opts.PollInterval)
	return w, nil
}

// Start watches root recursively until ctx is cancelled or Stop is called.
// It blocks; run it in its own goroutine.
func (w *AssetWatcher) Start(ctx context.Context, root string) error {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve absolute path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("stat asset root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset root is not a directory: %s", absPath)
	}

	w.mu.Lock()
	w.rootPath = absPath
	w.mu.Unlock()

	go w.forward(ctx)

	slog.Debug("asset_watcher_started",
		slog.String("root", absPath),
		slog.String("type", w.Type()))

	if w.useFsnotify {
		return w.runFsnotify(ctx)
	}
	return w.runPolling(ctx)
}

func (w *AssetWatcher) runFsnotify(ctx context.Context) error {
	if err := w.addRecursive(w.Root()); err != nil {
		return fmt.Errorf("add directories to watcher: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleFsnotifyEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("asset_watcher_error", slog.String("error", err.Error()))
		}
	}
}

func (w *AssetWatcher) runPolling(ctx context.Context) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stopCh:
				return
			case event, ok := <-w.pollWatcher.Events():
				if !ok {
					return
				}
				if !ignored(event.Path) {
					w.debouncer.Add(event)
				}
			}
		}
	}()

	err := w.pollWatcher.Start(ctx, w.Root())
	if ctx.Err() != nil {
		_ = w.Stop()
	}
	return err
}

func (w *AssetWatcher) handleFsnotifyEvent(event fsnotify.Event) {
	root := w.Root()
	relPath, err := filepath.Rel(root, event.Name)
	if err != nil {
		relPath = event.Name
	}
	if ignored(relPath) {
		return
	}

	isDir := false
	if info, err := os.Stat(event.Name); err == nil {
		isDir = info.IsDir()
	}

	var op Operation
	switch {
	case event.Op&fsnotify.Create != 0:
		op = OpCreate
		if isDir {
			// New directories (an unpacked set, say) need their own watches.
			if err := w.addRecursive(event.Name); err != nil {
				slog.Warn("asset_watch_add_failed",
					slog.String("path", relPath),
					slog.String("error", err.Error()))
			}
		}
	case event.Op&fsnotify.Write != 0:
		op = OpModify
	case event.Op&fsnotify.Remove != 0:
		op = OpDelete
	case event.Op&fsnotify.Rename != 0:
		op = OpRename
	default:
		// chmod
		return
	}

	w.debouncer.Add(AssetEvent{
		Path:      relPath,
		Operation: op,
		IsDir:     isDir,
		Timestamp: time.Now(),
	})
}

// forward hands debounced events to the callback.
func (w *AssetWatcher) forward(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.debouncer.Output():
			if !ok {
				return
			}
			slog.Debug("asset_change",
				slog.String("path", event.Path),
				slog.String("op", event.Operation.String()))
			w.onChange(event)
		}
	}
}

func (w *AssetWatcher) addRecursive(dir string) error {
	root := w.Root()
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if !d.IsDir() {
			return nil
		}
		relPath, _ := filepath.Rel(root, path)
		if relPath != "." && ignored(relPath) {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

// ignored skips hidden files and directories anywhere below the root.
func ignored(relPath string) bool {
	if relPath == "." || relPath == "" {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// Stop stops the watcher and releases resources. Safe to call multiple
// times.
func (w *AssetWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopCh)

	w.debouncer.Stop()
	if w.fsWatcher != nil {
		_ = w.fsWatcher.Close()
	}
	if w.pollWatcher != nil {
		_ = w.pollWatcher.Stop()
	}
	return nil
}

// Type returns "fsnotify" or "polling".
func (w *AssetWatcher) Type() string {
	if w.useFsnotify {
		return "fsnotify"
	}
	return "polling"
}

// Root returns the absolute root being watched.
func (w *AssetWatcher) Root() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.rootPath
}

// IsHealthy returns true until the watcher stops.
func (w *AssetWatcher) IsHealthy() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return !w.stopped
}
