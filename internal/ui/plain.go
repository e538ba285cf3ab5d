package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/catalog"
)

// maxPlainCell bounds one icon name column in plain output.
const maxPlainCell = 28

// PlainRenderer writes views as plain text (for pipes, CI and one-shot
// commands).
type PlainRenderer struct {
	mu     sync.Mutex
	out    io.Writer
	styles Styles
}

// NewPlainRenderer creates a plain text renderer.
func NewPlainRenderer(cfg Config) *PlainRenderer {
	return &PlainRenderer{
		out:    cfg.Output,
		styles: GetStyles(cfg.NoColor, cfg.Dark),
	}
}

// RenderView writes every group header followed by its rows. Columns are
// aligned across the whole view.
func (r *PlainRenderer) RenderView(v catalog.View) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.Empty() {
		_, err := fmt.Fprintln(r.out, r.styles.Dim.Render(noResults(v.Query)))
		return err
	}

	cell := 0
	for _, g := range v.Groups {
		for _, icon := range g.Icons() {
			cell = max(cell, len([]rune(icon.DisplayName())))
		}
	}
	cell = min(cell, maxPlainCell)

	var b strings.Builder
	for i, g := range v.Groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.styles.Group.Render(g.Title))
		b.WriteString(r.styles.Count.Render(fmt.Sprintf(" (%d)", g.Total)))
		b.WriteByte('\n')
		for _, row := range g.Rows {
			cells := make([]string, len(row))
			for j, icon := range row {
				cells[j] = pad(truncate(icon.DisplayName(), cell), cell)
			}
			b.WriteString("  ")
			b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
			b.WriteByte('\n')
		}
	}
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%d icons in %d groups", v.Total(), len(v.Groups))))
	b.WriteByte('\n')

	_, err := io.WriteString(r.out, b.String())
	return err
}

// RenderDetail writes the footer for one icon.
func (r *PlainRenderer) RenderDetail(icon catalog.Icon, variants []assets.Resolved) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := fmt.Fprintln(r.out, strings.Join(detailLines(icon, variants, r.styles), "\n"))
	return err
}

func noResults(query string) string {
	if query == "" {
		return "No icons in catalog"
	}
	return fmt.Sprintf("No icons match %q", query)
}
