package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/iconcat/internal/catalog"
)

func writeAsset(t *testing.T, root, rel string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("asset"), 0o644))
}

func TestResolver_Exists(t *testing.T) {
	// Given: an asset root holding only the light raster
	root := t.TempDir()
	writeAsset(t, root, "Actions/general/close.png")
	r := NewResolver(root, ResolverOptions{})

	// Then: the light asset exists, the dark one is missing without error
	assert.True(t, r.Exists(rasterIcon(), Variant{}))
	assert.False(t, r.Exists(rasterIcon(), Variant{Dark: true}))
	assert.Equal(t, filepath.Join(root, "Actions", "general", "close.png"), r.Path(rasterIcon(), Variant{}))
}

func TestResolver_CachesUntilPurge(t *testing.T) {
	root := t.TempDir()
	r := NewResolver(root, ResolverOptions{CacheSize: 16})

	// Given: a cached miss
	assert.False(t, r.Exists(vectorIcon(), Variant{}))
	assert.Equal(t, 1, r.Cached())

	// When: the file appears
	writeAsset(t, root, "Actions/general/add-icon.svg")

	// Then: the cached answer holds until the cache is purged
	assert.False(t, r.Exists(vectorIcon(), Variant{}))
	r.Purge()
	assert.Equal(t, 0, r.Cached())
	assert.True(t, r.Exists(vectorIcon(), Variant{}))
}

func TestResolver_DirectoryIsNotAnAsset(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Actions", "general", "add-icon.svg"), 0o755))

	assert.False(t, NewResolver(root, ResolverOptions{}).Exists(vectorIcon(), Variant{}))
}

func TestResolver_NoRoot(t *testing.T) {
	r := NewResolver("", ResolverOptions{})

	assert.Equal(t, "", r.Path(vectorIcon(), Variant{}))
	assert.False(t, r.Exists(vectorIcon(), Variant{}))
	assert.NoError(t, r.Prefetch(context.Background(), []catalog.Icon{vectorIcon()}, FooterVariants))
	assert.Equal(t, 0, r.Cached())
}

func TestResolver_Footer(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "Actions/general/close.png")
	writeAsset(t, root, "Actions/general/close@2x.png")
	r := NewResolver(root, ResolverOptions{})

	got := r.Footer(rasterIcon())

	require.Len(t, got, 4)
	assert.Equal(t, "light", got[0].Label)
	assert.True(t, got[0].Exists)
	assert.Equal(t, catalog.Size{Width: 16, Height: 16}, got[0].Size)
	assert.Equal(t, "Actions/general/close@2x.png", got[1].RelPath)
	assert.True(t, got[1].Exists)
	assert.Equal(t, catalog.Size{Width: 32, Height: 32}, got[1].Size)
	assert.False(t, got[2].Exists)
	assert.False(t, got[3].Exists)
}

func TestResolver_Prefetch(t *testing.T) {
	root := t.TempDir()
	icons := make([]catalog.Icon, 0, 20)
	for i := 0; i < 20; i++ {
		ic := vectorIcon()
		ic.Name = "icon-" + string(rune('a'+i))
		icons = append(icons, ic)
		if i%2 == 0 {
			writeAsset(t, root, RelPath(ic, Variant{}))
		}
	}
	r := NewResolver(root, ResolverOptions{PrefetchWorkers: 3})

	require.NoError(t, r.Prefetch(context.Background(), icons, FooterVariants))

	assert.Equal(t, 40, r.Cached(), "light and dark for every icon")
	assert.True(t, r.Exists(icons[0], Variant{}))
	assert.False(t, r.Exists(icons[1], Variant{}))
}

func TestResolver_PrefetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewResolver(t.TempDir(), ResolverOptions{}).
		Prefetch(ctx, []catalog.Icon{vectorIcon()}, FooterVariants)

	assert.ErrorIs(t, err, context.Canceled)
}
