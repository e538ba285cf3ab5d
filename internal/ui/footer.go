package ui

import (
	"fmt"
	"strings"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/catalog"
)

// QualifiedID returns the identifier copied to the clipboard: the
// catalog's qualified name, or the light asset path when it has none.
func QualifiedID(icon catalog.Icon) string {
	if icon.Qualified != "" {
		return icon.Qualified
	}
	return assets.RelPath(icon, assets.Variant{Dark: icon.OnlyDark()})
}

// detailLines renders the footer for one icon: identity first, then one
// line per variant with its asset path, size and presence on disk.
func detailLines(icon catalog.Icon, variants []assets.Resolved, s Styles) []string {
	section := icon.Section
	if section == "" {
		section = "(root)"
	}
	display := assets.DisplaySize(icon, assets.ThumbnailMax)

	lines := []string{
		s.Header.Render(icon.DisplayName()) + " " + s.Dim.Render("("+icon.Name+")"),
		field(s, "set", icon.Set),
		field(s, "section", section),
		field(s, "format", icon.Format.String()),
		field(s, "qualified", QualifiedID(icon)),
		field(s, "display", display.String()),
	}
	if icon.Area != "" {
		lines = append(lines, field(s, "area", icon.Area))
	}

	if len(variants) == 0 {
		return append(lines, s.Dim.Render("no variants"))
	}

	pathWidth := 0
	for _, v := range variants {
		pathWidth = max(pathWidth, len(v.RelPath))
	}
	lines = append(lines, s.Label.Render("variants:"))
	for _, v := range variants {
		presence := s.Success.Render("ok")
		if !v.Exists {
			presence = s.Warning.Render("missing")
		}
		lines = append(lines, fmt.Sprintf("  %-9s %-*s  %-9s %s",
			v.Label, pathWidth, v.RelPath, v.Size.String(), presence))
	}
	return lines
}

func field(s Styles, label, value string) string {
	return s.Label.Render(fmt.Sprintf("%-10s", label+":")) + " " + value
}

// truncate shortens s to at most width runes, marking the cut with "…".
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
