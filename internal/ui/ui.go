// Package ui renders the icon catalog in a terminal: an interactive
// bubbletea browser for TTYs and plain text for pipes and CI.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// PixelsPerColumn converts terminal columns into the virtual pixel width
// the layout breakpoints are expressed in.
const PixelsPerColumn = 8

// breakpoints maps a minimum width to the number of icons per row,
// widest first.
var breakpoints = []struct {
	minWidth int
	perRow   int
}{
	{1200, 10},
	{1000, 8},
	{800, 6},
	{600, 4},
}

// minPerRow is used below the narrowest breakpoint.
const minPerRow = 3

// ChunkSizeForWidth returns how many icons fit in one row at width.
func ChunkSizeForWidth(width int) int {
	for _, bp := range breakpoints {
		if width >= bp.minWidth {
			return bp.perRow
		}
	}
	return minPerRow
}

// ChunkSizeForColumns maps a terminal width in columns to a chunk size.
func ChunkSizeForColumns(columns int) int {
	return ChunkSizeForWidth(columns * PixelsPerColumn)
}

// Config configures rendering.
type Config struct {
	Output  io.Writer
	NoColor bool
	Dark    bool
	// ChunkSize fixes icons per row. Zero derives it from the width.
	ChunkSize int
}

// ConfigOption is a function that modifies Config.
type ConfigOption func(*Config)

// WithNoColor disables color output.
func WithNoColor(noColor bool) ConfigOption {
	return func(c *Config) {
		c.NoColor = noColor
	}
}

// WithDarkTheme starts in the dark theme.
func WithDarkTheme(dark bool) ConfigOption {
	return func(c *Config) {
		c.Dark = dark
	}
}

// WithChunkSize fixes the number of icons per row.
func WithChunkSize(n int) ConfigOption {
	return func(c *Config) {
		c.ChunkSize = n
	}
}

// NewConfig creates a new Config with the given output and options.
func NewConfig(output io.Writer, opts ...ConfigOption) Config {
	cfg := Config{Output: output}
	for _, opt := range opts {
		opt(&cfg)
	}
	if DetectNoColor() {
		cfg.NoColor = true
	}
	return cfg
}

// Interactive reports whether the browser can take over the terminal.
func Interactive(w io.Writer) bool {
	return IsTTY(w) && !DetectCI()
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// DetectCI checks if running in a CI environment.
func DetectCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS"}
	for _, v := range ciVars {
		if _, exists := os.LookupEnv(v); exists {
			return true
		}
	}
	return false
}
