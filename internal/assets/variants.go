// Package assets maps catalog icons to asset files: which variants an icon
// ships, where each one lives under the asset root, how large it renders,
// and whether it is actually on disk.
package assets

import (
	"path"

	"github.com/Aman-CERP/iconcat/internal/catalog"
)

// ThumbnailMax bounds the display size of a footer thumbnail.
const ThumbnailMax = 42

// Variant selects one rendering of an icon.
type Variant struct {
	Dark   bool `json:"dark"`
	Retina bool `json:"retina"`
}

// Label returns "light", "light@2x", "dark" or "dark@2x".
func (v Variant) Label() string {
	label := "light"
	if v.Dark {
		label = "dark"
	}
	if v.Retina {
		label += "@2x"
	}
	return label
}

// RelPath returns the slash-separated asset path of one variant:
// <set>/<section>/<name>[@2x][_dark].<ext>. The section segment is left
// out for root icons, and @2x only applies to raster icons.
func RelPath(icon catalog.Icon, v Variant) string {
	name := icon.Name
	if v.Retina && icon.Format == catalog.FormatRaster {
		name += "@2x"
	}
	if v.Dark {
		name += "_dark"
	}
	return path.Join(icon.Set, icon.Section, name+"."+icon.Format.Ext())
}

// TileDark reports whether a grid tile shows the dark asset. An icon that
// only ships a dark asset always does, whatever the theme.
func TileDark(icon catalog.Icon, darkTheme bool) bool {
	if icon.OnlyDark() {
		return true
	}
	return darkTheme && icon.Dark
}

// TileVariant returns the variant a grid tile renders.
func TileVariant(icon catalog.Icon, darkTheme bool) Variant {
	return Variant{Dark: TileDark(icon, darkTheme)}
}

// FooterVariants lists the variants the detail footer shows, light before
// dark and standard before retina. The light variants are omitted for
// dark-only icons, raster and vector alike.
func FooterVariants(icon catalog.Icon) []Variant {
	light := icon.HasLight()
	retina := icon.Format == catalog.FormatRaster && icon.HiDPI

	var out []Variant
	if light {
		out = append(out, Variant{})
		if retina {
			out = append(out, Variant{Retina: true})
		}
	}
	if icon.Dark {
		out = append(out, Variant{Dark: true})
		if retina {
			out = append(out, Variant{Dark: true, Retina: true})
		}
	}
	return out
}

// DisplaySize returns the on-screen size of a variant: always the standard
// size, clamped to max on each axis. max <= 0 disables clamping.
func DisplaySize(icon catalog.Icon, max int) catalog.Size {
	s := icon.StandardSize()
	if max > 0 {
		s.Width = min(s.Width, max)
		s.Height = min(s.Height, max)
	}
	return s
}

// ActualSize returns the pixel size of the variant's asset: the high-DPI
// size for a retina variant when the icon has one, the standard size
// otherwise.
func ActualSize(icon catalog.Icon, v Variant) catalog.Size {
	if v.Retina {
		if s, ok := icon.RetinaSize(); ok {
			return s
		}
	}
	return icon.StandardSize()
}
