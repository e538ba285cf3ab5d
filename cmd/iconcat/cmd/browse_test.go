package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/catalog"
	"github.com/Aman-CERP/iconcat/internal/watcher"
)

func TestBrowseCmd_PlainFallbackUsesChunk(t *testing.T) {
	// Given: output that is not a terminal
	isolate(t)

	// When: browsing with one icon per row
	stdout, _, err := execute(t, "--catalog", fixtureCatalog(t), "browse", "--chunk", "1")

	// Then: the two tree icons land on separate lines
	require.NoError(t, err)
	assert.Contains(t, stdout, "\n  folder / open\n")
	assert.Contains(t, stdout, "\n  quick fix\n")
}

func TestBrowseCmd_PlainFallbackLoadError(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "--catalog", "missing.json", "browse")

	assert.Error(t, err)
}

func TestWatchAssets_PurgesOnChange(t *testing.T) {
	// Given: a resolver that has cached a missing asset
	root := t.TempDir()
	resolver := assets.NewResolver(root, assets.ResolverOptions{})
	icon := catalog.Icon{Name: "close", Set: "Actions", Variants: 1, Format: catalog.FormatRaster}
	require.False(t, resolver.Exists(icon, assets.Variant{}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan watcher.AssetEvent, 1)
	stop := watchAssets(ctx, resolver, 20*time.Millisecond, func(ev watcher.AssetEvent) {
		select {
		case changed <- ev:
		default:
		}
	})
	defer stop()
	time.Sleep(100 * time.Millisecond)

	// When: the asset appears on disk
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Actions"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Actions", "close.png"), []byte("x"), 0o644))

	// Then: the cache is purged and the new file is seen
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
	assert.Eventually(t, func() bool {
		return resolver.Exists(icon, assets.Variant{})
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatchAssets_MissingRoot(t *testing.T) {
	resolver := assets.NewResolver(filepath.Join(t.TempDir(), "none"), assets.ResolverOptions{})

	stop := watchAssets(context.Background(), resolver, time.Millisecond, nil)

	assert.NotNil(t, stop)
	stop()
}
