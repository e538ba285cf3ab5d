package assets

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Aman-CERP/iconcat/internal/catalog"
)

// Resolver defaults.
const (
	// DefaultCacheSize is the number of existence probes kept in memory.
	DefaultCacheSize = 4096

	// DefaultPrefetchWorkers bounds concurrent os.Stat calls during Prefetch.
	DefaultPrefetchWorkers = 8
)

// Resolver locates asset files under a root directory and remembers which
// ones exist. A missing asset is never an error.
type Resolver struct {
	root    string
	workers int
	cache   *lru.Cache[string, bool]
}

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	CacheSize       int
	PrefetchWorkers int
}

// NewResolver creates a resolver for root. An empty root resolves nothing:
// every asset reports missing.
func NewResolver(root string, opts ResolverOptions) *Resolver {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.PrefetchWorkers <= 0 {
		opts.PrefetchWorkers = DefaultPrefetchWorkers
	}
	cache, _ := lru.New[string, bool](opts.CacheSize)
	return &Resolver{
		root:    root,
		workers: opts.PrefetchWorkers,
		cache:   cache,
	}
}

// Root returns the asset root.
func (r *Resolver) Root() string {
	return r.root
}

// Path returns the absolute file path of a variant, or "" without a root.
func (r *Resolver) Path(icon catalog.Icon, v Variant) string {
	if r.root == "" {
		return ""
	}
	return filepath.Join(r.root, filepath.FromSlash(RelPath(icon, v)))
}

// Exists reports whether the variant's asset file is present.
func (r *Resolver) Exists(icon catalog.Icon, v Variant) bool {
	p := r.Path(icon, v)
	if p == "" {
		return false
	}
	if ok, hit := r.cache.Get(p); hit {
		return ok
	}
	ok := probe(p)
	r.cache.Add(p, ok)
	return ok
}

func probe(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("asset_probe_failed", slog.String("path", p), slog.String("error", err.Error()))
		}
		return false
	}
	return info.Mode().IsRegular()
}

// Resolved is one variant with its location and presence.
type Resolved struct {
	Variant Variant      `json:"variant"`
	Label   string       `json:"label"`
	RelPath string       `json:"path"`
	Exists  bool         `json:"exists"`
	Size    catalog.Size `json:"size"`
}

// Footer resolves every footer variant of icon.
func (r *Resolver) Footer(icon catalog.Icon) []Resolved {
	variants := FooterVariants(icon)
	out := make([]Resolved, 0, len(variants))
	for _, v := range variants {
		out = append(out, Resolved{
			Variant: v,
			Label:   v.Label(),
			RelPath: RelPath(icon, v),
			Exists:  r.Exists(icon, v),
			Size:    ActualSize(icon, v),
		})
	}
	return out
}

// Prefetch probes the given variants of icons concurrently so later Exists
// calls hit the cache. It stops early when ctx is cancelled.
func (r *Resolver) Prefetch(ctx context.Context, icons []catalog.Icon, variants func(catalog.Icon) []Variant) error {
	if r.root == "" || len(icons) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, icon := range icons {
		for _, v := range variants(icon) {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				r.Exists(icon, v)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Purge forgets every cached probe.
func (r *Resolver) Purge() {
	n := r.cache.Len()
	r.cache.Purge()
	slog.Debug("asset_cache_purged", slog.Int("entries", n))
}

// Cached returns the number of cached probes.
func (r *Resolver) Cached() int {
	return r.cache.Len()
}
