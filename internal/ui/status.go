package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Aman-CERP/iconcat/internal/async"
)

// StatusInfo describes catalog health for `iconcat status`.
type StatusInfo struct {
	Load       async.Snapshot `json:"load"`
	AssetsRoot string         `json:"assets_root"`
	AssetsDir  bool           `json:"assets_dir_exists"`
}

// StatusRenderer displays catalog status.
type StatusRenderer struct {
	out    io.Writer
	styles Styles
}

// NewStatusRenderer creates a status renderer.
func NewStatusRenderer(out io.Writer, noColor bool) *StatusRenderer {
	return &StatusRenderer{
		out:    out,
		styles: GetStyles(noColor, false),
	}
}

// Render displays status info to terminal.
func (r *StatusRenderer) Render(info StatusInfo) error {
	load := info.Load
	_, _ = fmt.Fprintf(r.out, "%s\n\n", r.styles.Header.Render("Catalog: "+load.Source))

	_, _ = fmt.Fprintf(r.out, "  Status:  %s\n", r.renderStatus(load.Status))
	if load.Error != "" {
		_, _ = fmt.Fprintf(r.out, "  Error:   %s\n", r.styles.Error.Render(load.Error))
		if load.ErrorCode != "" {
			_, _ = fmt.Fprintf(r.out, "  Code:    %s\n", load.ErrorCode)
		}
	}
	_, _ = fmt.Fprintf(r.out, "  Sets:    %d\n", load.Sets)
	_, _ = fmt.Fprintf(r.out, "  Groups:  %d\n", load.Groups)
	_, _ = fmt.Fprintf(r.out, "  Icons:   %d\n", load.Icons)
	_, _ = fmt.Fprintf(r.out, "  Loaded:  %s\n", formatDuration(time.Duration(load.ElapsedMS)*time.Millisecond))
	_, _ = fmt.Fprintln(r.out)

	root := info.AssetsRoot
	if root == "" {
		root = "(none)"
	}
	assetState := "ready"
	if !info.AssetsDir {
		assetState = "missing"
	}
	_, _ = fmt.Fprintf(r.out, "  Assets:  %s (%s)\n", root, r.renderStatus(assetState))
	return nil
}

// RenderJSON outputs status as JSON.
func (r *StatusRenderer) RenderJSON(info StatusInfo) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(info)
}

// renderStatus formats a status string with color.
func (r *StatusRenderer) renderStatus(status string) string {
	switch status {
	case string(async.StatusReady):
		return r.styles.Success.Render(status)
	case string(async.StatusLoading), "missing":
		return r.styles.Warning.Render(status)
	case string(async.StatusError):
		return r.styles.Error.Render(status)
	default:
		return status
	}
}

// formatDuration formats a duration in a human-friendly way.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Round(time.Second).String()
	}
}
