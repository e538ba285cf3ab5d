package async

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Aman-CERP/iconcat/internal/catalog"
	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
)

// LoadFunc reads and indexes sets. Tests inject their own.
type LoadFunc func(path string) ([]catalog.IconSet, error)

// Loader loads one catalog in a background goroutine. A Loader runs at
// most once; the catalog is never reloaded.
type Loader struct {
	path     string
	progress *Progress

	// LoadFunc reads the catalog file. Defaults to catalog.LoadFile.
	LoadFunc LoadFunc

	once   sync.Once
	doneCh chan struct{}

	mu      sync.Mutex
	catalog *catalog.Catalog
	err     error
}

// NewLoader creates a loader for the catalog at path.
func NewLoader(path string) *Loader {
	return &Loader{
		path:     path,
		progress: NewProgress(path),
		LoadFunc: catalog.LoadFile,
		doneCh:   make(chan struct{}),
	}
}

// Progress returns the progress tracker.
func (l *Loader) Progress() *Progress {
	return l.progress
}

// Status returns a snapshot of the load state.
func (l *Loader) Status() Snapshot {
	return l.progress.Snapshot()
}

// Start begins loading in a background goroutine and returns
// immediately. Later calls are no-ops.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go l.run(ctx)
	})
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.doneCh)

	if err := ctx.Err(); err != nil {
		l.fail(err)
		return
	}

	sets, err := l.LoadFunc(l.path)
	if err != nil {
		l.fail(err)
		return
	}
	if err := ctx.Err(); err != nil {
		l.fail(err)
		return
	}

	l.progress.SetStage(StageIndexing)
	c := catalog.New(sets)
	c.Source = l.path

	stats := c.Stats()
	l.mu.Lock()
	l.catalog = c
	l.mu.Unlock()
	l.progress.SetReady(stats.Sets, stats.Groups, stats.Icons)

	slog.Info("catalog_loaded",
		slog.String("path", l.path),
		slog.Int("sets", stats.Sets),
		slog.Int("groups", stats.Groups),
		slog.Int("icons", stats.Icons),
		slog.Int64("elapsed_ms", l.progress.Snapshot().ElapsedMS))
}

func (l *Loader) fail(err error) {
	l.mu.Lock()
	l.err = err
	l.mu.Unlock()

	l.progress.SetError(icerrors.FormatForUser(err), icerrors.GetCode(err))
	attrs := append([]slog.Attr{slog.String("path", l.path)}, icerrors.LogAttrs(err)...)
	slog.LogAttrs(context.Background(), slog.LevelError, "catalog_load_failed", attrs...)
}

// Done is closed when the load finishes, successfully or not.
func (l *Loader) Done() <-chan struct{} {
	return l.doneCh
}

// Wait blocks until the load finishes or ctx is done. It returns the load
// error, or ctx's error if the wait was abandoned.
func (l *Loader) Wait(ctx context.Context) error {
	select {
	case <-l.doneCh:
	case <-ctx.Done():
		return ctx.Err()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Catalog returns the loaded catalog, or nil until the load succeeds.
func (l *Loader) Catalog() *catalog.Catalog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog
}

// Ready returns the catalog when it is loaded, or a coded error that says
// why it is not: still loading, or the load failure itself.
func (l *Loader) Ready() (*catalog.Catalog, error) {
	select {
	case <-l.doneCh:
	default:
		return nil, icerrors.New(icerrors.ErrCodeCatalogLoading, "catalog is loading", nil).
			WithSuggestion("Retry in a moment")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	return l.catalog, nil
}
