package catalog

import (
	"fmt"
	"slices"
)

// Format is the asset encoding of an icon.
type Format int

const (
	// FormatRaster is a bitmap icon (png), possibly with a @2x asset.
	FormatRaster Format = iota
	// FormatVector is an svg icon.
	FormatVector
)

// kindSVG is the only catalog kind that maps to FormatVector.
const kindSVG = "svg"

// ParseFormat maps a catalog "kind" to a Format. Anything other than
// "svg" is a raster icon.
func ParseFormat(kind string) Format {
	if kind == kindSVG {
		return FormatVector
	}
	return FormatRaster
}

// String returns the format name.
func (f Format) String() string {
	if f == FormatVector {
		return "vector"
	}
	return "raster"
}

// Ext returns the asset file extension without the dot.
func (f Format) Ext() string {
	if f == FormatVector {
		return "svg"
	}
	return "png"
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String returns "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Icon is one icon asset.
type Icon struct {
	Name     string `json:"name"`
	Set      string `json:"set"`
	Area     string `json:"area,omitempty"`
	Section  string `json:"section"`
	Variants int    `json:"variants"`
	Dark     bool   `json:"dark"`
	HiDPI    bool   `json:"hidpi"`
	// Sizes holds the standard size at index 0 and the high-DPI size at
	// index 1 when one exists.
	Sizes     []Size `json:"sizes"`
	Format    Format `json:"format"`
	Qualified string `json:"qualified,omitempty"`
}

// OnlyDark reports whether the icon ships a dark asset and nothing else.
// The catalog encodes this as a single variant flagged dark.
func (i Icon) OnlyDark() bool {
	return i.Variants == 1 && i.Dark
}

// HasLight reports whether a light asset exists.
func (i Icon) HasLight() bool {
	return !i.OnlyDark()
}

// StandardSize returns the standard resolution size.
func (i Icon) StandardSize() Size {
	if len(i.Sizes) == 0 {
		return Size{}
	}
	return i.Sizes[0]
}

// RetinaSize returns the high-DPI size and whether the icon has one.
func (i Icon) RetinaSize() (Size, bool) {
	if len(i.Sizes) < 2 {
		return Size{}, false
	}
	return i.Sizes[1], true
}

// DisplayName returns the icon name in display form.
func (i Icon) DisplayName() string {
	return DisplayName(i.Name)
}

// clone returns a deep copy so callers can't reach into catalog storage.
func (i Icon) clone() Icon {
	i.Sizes = slices.Clone(i.Sizes)
	return i
}

// IconSet is one top-level collection as loaded from the catalog.
type IconSet struct {
	Set string `json:"set"`
	// Areas is display-only and does not take part in grouping.
	Areas    []string `json:"areas"`
	Sections []string `json:"sections"`
	Icons    []Icon   `json:"icons"`
}
