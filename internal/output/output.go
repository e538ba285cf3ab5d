// Package output formats status lines for iconcat commands that don't
// render the catalog itself.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Writer prints status lines to one stream. Write errors are ignored:
// this is console chatter, never data.
type Writer struct {
	out      io.Writer
	useColor bool

	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	label   lipgloss.Style
}

// New creates a Writer without color.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// NewColor creates a Writer that colors status icons unless noColor is set.
func NewColor(out io.Writer, noColor bool) *Writer {
	w := New(out)
	if noColor {
		return w
	}
	w.useColor = true
	w.success = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	w.warning = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	w.failure = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	w.label = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return w
}

// Status prints msg after icon, or indented when icon is empty.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "  %s\n", msg)
	}
}

// Statusf prints a formatted status message.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Success prints msg with a check mark.
func (w *Writer) Success(msg string) {
	w.Status(w.paint(w.success, "✓"), msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints msg with a warning mark.
func (w *Writer) Warning(msg string) {
	w.Status(w.paint(w.warning, "!"), msg)
}

// Warningf prints a formatted warning.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints msg with a cross.
func (w *Writer) Error(msg string) {
	w.Status(w.paint(w.failure, "✗"), msg)
}

// Errorf prints a formatted error.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// KeyValue prints an aligned "label: value" line.
func (w *Writer) KeyValue(label, value string) {
	_, _ = fmt.Fprintf(w.out, "%s %s\n", w.paint(w.label, fmt.Sprintf("%-10s", label+":")), value)
}

// Code prints content indented by two spaces between blank lines.
func (w *Writer) Code(content string) {
	_, _ = fmt.Fprintln(w.out)
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		_, _ = fmt.Fprintf(w.out, "  %s\n", line)
	}
	_, _ = fmt.Fprintln(w.out)
}

// Rule prints a "---" separator.
func (w *Writer) Rule() {
	_, _ = fmt.Fprintln(w.out, "---")
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

func (w *Writer) paint(style lipgloss.Style, s string) string {
	if !w.useColor {
		return s
	}
	return style.Render(s)
}
