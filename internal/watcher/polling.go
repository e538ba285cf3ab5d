package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"
)

// PollingWatcher detects asset changes by rescanning the root on an
// interval. Used when fsnotify is unavailable.
type PollingWatcher struct {
	interval time.Duration
	state    map[string]fileSnapshot
	events   chan AssetEvent
	stopCh   chan struct{}
	mu       sync.Mutex
	stopped  bool
	rootPath string
}

type fileSnapshot struct {
	modTime time.Time
	size    int64
	isDir   bool
}

// NewPollingWatcher creates a polling watcher with the given interval.
func NewPollingWatcher(interval time.Duration) *PollingWatcher {
	if interval <= 0 {
		interval = DefaultOptions().PollInterval
	}
	return &PollingWatcher{
		interval: interval,
		state:    make(map[string]fileSnapshot),
		events:   make(chan AssetEvent, 100),
		stopCh:   make(chan struct{}),
	}
}

// Start scans root on every tick until ctx is cancelled or Stop is called.
func (p *PollingWatcher) Start(ctx context.Context, root string) error {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve absolute path: %w", err)
	}

	p.mu.Lock()
	p.rootPath = absPath
	p.state = p.snapshot()
	p.mu.Unlock()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = p.Stop()
			return ctx.Err()
		case <-p.stopCh:
			return nil
		case <-ticker.C:
			p.detectChanges()
		}
	}
}

// Stop stops the polling watcher and closes Events.
func (p *PollingWatcher) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return nil
	}
	p.stopped = true
	close(p.stopCh)
	close(p.events)
	return nil
}

// Events returns the channel of detected changes.
func (p *PollingWatcher) Events() <-chan AssetEvent {
	return p.events
}

// snapshot walks the root. Must be called with lock held.
func (p *PollingWatcher) snapshot() map[string]fileSnapshot {
	files := make(map[string]fileSnapshot)
	_ = filepath.WalkDir(p.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		relPath, err := filepath.Rel(p.rootPath, path)
		if err != nil || relPath == "." {
			return nil
		}
		if ignored(relPath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files[relPath] = fileSnapshot{
			modTime: info.ModTime(),
			size:    info.Size(),
			isDir:   d.IsDir(),
		}
		return nil
	})
	return files
}

// detectChanges diffs a fresh scan against the previous one.
func (p *PollingWatcher) detectChanges() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}

	current := p.snapshot()
	now := time.Now()

	for path, snap := range current {
		prev, exists := p.state[path]
		switch {
		case !exists:
			p.emitLocked(AssetEvent{Path: path, Operation: OpCreate, IsDir: snap.isDir, Timestamp: now})
		case !snap.isDir && (prev.modTime != snap.modTime || prev.size != snap.size):
			p.emitLocked(AssetEvent{Path: path, Operation: OpModify, Timestamp: now})
		}
	}
	for path, snap := range p.state {
		if _, exists := current[path]; !exists {
			p.emitLocked(AssetEvent{Path: path, Operation: OpDelete, IsDir: snap.isDir, Timestamp: now})
		}
	}

	p.state = current
}

func (p *PollingWatcher) emitLocked(event AssetEvent) {
	select {
	case p.events <- event:
	default:
		slog.Warn("polling_watcher_buffer_full",
			slog.String("path", event.Path),
			slog.String("op", event.Operation.String()))
	}
}
