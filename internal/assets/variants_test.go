package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aman-CERP/iconcat/internal/catalog"
)

func rasterIcon() catalog.Icon {
	return catalog.Icon{
		Name: "close", Set: "Actions", Section: "general",
		Variants: 2, Dark: true, HiDPI: true,
		Sizes:  []catalog.Size{{16, 16}, {32, 32}},
		Format: catalog.FormatRaster,
	}
}

func vectorIcon() catalog.Icon {
	return catalog.Icon{
		Name: "add-icon", Set: "Actions", Section: "general",
		Variants: 2, Dark: true,
		Sizes:  []catalog.Size{{16, 16}},
		Format: catalog.FormatVector,
	}
}

func TestRelPath(t *testing.T) {
	root := vectorIcon()
	root.Section = ""

	tests := []struct {
		name string
		icon catalog.Icon
		v    Variant
		want string
	}{
		{"vector light", vectorIcon(), Variant{}, "Actions/general/add-icon.svg"},
		{"vector dark", vectorIcon(), Variant{Dark: true}, "Actions/general/add-icon_dark.svg"},
		{"vector ignores retina", vectorIcon(), Variant{Retina: true}, "Actions/general/add-icon.svg"},
		{"raster light", rasterIcon(), Variant{}, "Actions/general/close.png"},
		{"raster retina", rasterIcon(), Variant{Retina: true}, "Actions/general/close@2x.png"},
		{"raster dark retina", rasterIcon(), Variant{Dark: true, Retina: true}, "Actions/general/close@2x_dark.png"},
		{"root section", root, Variant{}, "Actions/add-icon.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelPath(tt.icon, tt.v))
		})
	}
}

func TestTileDark(t *testing.T) {
	onlyDark := vectorIcon()
	onlyDark.Variants = 1

	noDark := vectorIcon()
	noDark.Dark = false

	tests := []struct {
		name  string
		icon  catalog.Icon
		theme bool
		want  bool
	}{
		{"dark theme, has dark", vectorIcon(), true, true},
		{"light theme, has dark", vectorIcon(), false, false},
		{"dark theme, no dark", noDark, true, false},
		{"only dark, light theme", onlyDark, false, true},
		{"only dark, dark theme", onlyDark, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TileDark(tt.icon, tt.theme))
			assert.Equal(t, Variant{Dark: tt.want}, TileVariant(tt.icon, tt.theme))
		})
	}
}

func labels(vs []Variant) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Label())
	}
	return out
}

func TestFooterVariants(t *testing.T) {
	vectorLightOnly := vectorIcon()
	vectorLightOnly.Dark = false

	vectorOnlyDark := vectorIcon()
	vectorOnlyDark.Variants = 1

	rasterNoRetina := rasterIcon()
	rasterNoRetina.HiDPI = false
	rasterNoRetina.Sizes = rasterNoRetina.Sizes[:1]

	rasterOnlyDark := rasterIcon()
	rasterOnlyDark.Variants = 1

	rasterLight := rasterIcon()
	rasterLight.Dark = false

	tests := []struct {
		name string
		icon catalog.Icon
		want []string
	}{
		{"vector light and dark", vectorIcon(), []string{"light", "dark"}},
		{"vector light only", vectorLightOnly, []string{"light"}},
		{"vector only dark", vectorOnlyDark, []string{"dark"}},
		{"raster full", rasterIcon(), []string{"light", "light@2x", "dark", "dark@2x"}},
		{"raster no retina", rasterNoRetina, []string{"light", "dark"}},
		{"raster only dark", rasterOnlyDark, []string{"dark", "dark@2x"}},
		{"raster light with retina", rasterLight, []string{"light", "light@2x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(FooterVariants(tt.icon)))
		})
	}
}

func TestSizes(t *testing.T) {
	big := rasterIcon()
	big.Sizes = []catalog.Size{{64, 48}, {128, 96}}

	assert.Equal(t, catalog.Size{Width: 42, Height: 42}, DisplaySize(big, ThumbnailMax))
	assert.Equal(t, catalog.Size{Width: 64, Height: 48}, DisplaySize(big, 0))
	assert.Equal(t, catalog.Size{Width: 16, Height: 16}, DisplaySize(rasterIcon(), ThumbnailMax),
		"display size comes from the standard size even for retina icons")

	assert.Equal(t, catalog.Size{Width: 128, Height: 96}, ActualSize(big, Variant{Retina: true}))
	assert.Equal(t, catalog.Size{Width: 64, Height: 48}, ActualSize(big, Variant{}))
	assert.Equal(t, catalog.Size{Width: 16, Height: 16}, ActualSize(vectorIcon(), Variant{Retina: true}),
		"no high-DPI size falls back to the standard size")
}
