package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/async"
	"github.com/Aman-CERP/iconcat/internal/catalog"
	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
	"github.com/Aman-CERP/iconcat/internal/watcher"
)

const (
	defaultWidth = 80
	minTileWidth = 6
	flashTimeout = 2 * time.Second
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusGrid
)

// Message types for bubbletea
type loadedMsg struct{ err error }
type queryMsg string
type flashExpiredMsg struct{ id int }

// AssetsChangedMsg tells the browser that files under the asset root
// changed. Send it after purging the resolver cache.
type AssetsChangedMsg struct {
	Path string
}

// BrowserOptions configures a Browser.
type BrowserOptions struct {
	// Loader supplies the catalog. The caller starts it.
	Loader *async.Loader
	// Resolver checks asset presence. Nil resolves nothing.
	Resolver *assets.Resolver
	// Debounce is the quiet period before a typed query is applied.
	Debounce  time.Duration
	Dark      bool
	NoColor   bool
	ChunkSize int
	// Copy writes to the clipboard. Defaults to clipboard.WriteAll.
	Copy func(string) error
}

type gridRow struct {
	icons []catalog.Icon
}

// Browser is the interactive bubbletea model for the catalog.
type Browser struct {
	loader   *async.Loader
	resolver *assets.Resolver
	queries  *watcher.Debouncer[string]
	copy     func(string) error

	// ctx bounds background work and is cancelled on quit.
	ctx    context.Context
	cancel context.CancelFunc

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	noColor    bool
	dark       bool
	styles     Styles
	fixedChunk int
	width      int
	height     int

	catalog   *catalog.Catalog
	loadErr   error
	query     string
	view      catalog.View
	rows      []gridRow
	cursorRow int
	cursorCol int
	focus     focusArea
	selected  *catalog.Icon
	flash     string
	flashID   int
	quitting  bool
}

// NewBrowser creates the browser model.
func NewBrowser(opts BrowserOptions) *Browser {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "Search icons"
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime))

	resolver := opts.Resolver
	if resolver == nil {
		resolver = assets.NewResolver("", assets.ResolverOptions{})
	}
	cp := opts.Copy
	if cp == nil {
		cp = clipboard.WriteAll
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Browser{
		ctx:        ctx,
		cancel:     cancel,
		loader:     opts.Loader,
		resolver:   resolver,
		queries:    watcher.NewDebouncer[string](opts.Debounce),
		copy:       cp,
		input:      input,
		spinner:    s,
		help:       help.New(),
		keys:       DefaultKeys,
		noColor:    opts.NoColor,
		dark:       opts.Dark,
		styles:     GetStyles(opts.NoColor, opts.Dark),
		fixedChunk: opts.ChunkSize,
		width:      defaultWidth,
	}
}

// NewProgram wraps the browser in a full-screen bubbletea program that
// stops when ctx is cancelled. Background asset probes share ctx.
func NewProgram(ctx context.Context, b *Browser, opts ...tea.ProgramOption) *tea.Program {
	b.cancel()
	b.ctx, b.cancel = context.WithCancel(ctx)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	return tea.NewProgram(b, opts...)
}

// Init implements tea.Model.
func (m *Browser) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForLoad(m.loader),
		waitForQuery(m.queries.Output()),
	)
}

func waitForLoad(l *async.Loader) tea.Cmd {
	return func() tea.Msg {
		<-l.Done()
		_, err := l.Ready()
		return loadedMsg{err: err}
	}
}

// waitForQuery delivers the next debounced query. It is re-armed after
// every delivery.
func waitForQuery(out <-chan string) tea.Cmd {
	return func() tea.Msg {
		q, ok := <-out
		if !ok {
			return nil
		}
		return queryMsg(q)
	}
}

// Update implements tea.Model.
func (m *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-4)
		m.help.Width = msg.Width
		m.rebuild()
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.catalog = m.loader.Catalog()
		m.rebuild()
		return m, m.prefetch()

	case queryMsg:
		m.query = string(msg)
		m.cursorRow, m.cursorCol = 0, 0
		m.rebuild()
		return m, tea.Batch(waitForQuery(m.queries.Output()), m.prefetch())

	case AssetsChangedMsg:
		return m, m.prefetch()

	case flashExpiredMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.catalog != nil || m.loadErr != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.queries.Stop()
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Clear):
		m.clear()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusSearch {
			m.setFocus(focusGrid)
		} else {
			m.setFocus(focusSearch)
		}
		return m, nil
	}

	// The query is typed and debounced while the catalog loads; the
	// loaded rebuild applies it.
	if m.focus == focusSearch {
		if key.Matches(msg, m.keys.Apply) {
			m.queries.Flush()
			if m.catalog != nil {
				m.setFocus(focusGrid)
			}
			return m, nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != before {
			m.queries.Add(v)
		}
		return m, cmd
	}

	if m.catalog == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Left):
		m.step(-1)
	case key.Matches(msg, m.keys.Right):
		m.step(1)
	case key.Matches(msg, m.keys.Select):
		m.toggleSelect()
	case key.Matches(msg, m.keys.Theme):
		m.dark = !m.dark
		m.styles = GetStyles(m.noColor, m.dark)
		return m, m.prefetch()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyTarget()
	case key.Matches(msg, m.keys.Search):
		m.setFocus(focusSearch)
	}
	return m, nil
}

func (m *Browser) setFocus(f focusArea) {
	m.focus = f
	if f == focusSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// clear drops the selection first, then the query, then returns focus to
// the search field.
func (m *Browser) clear() {
	switch {
	case m.selected != nil:
		m.selected = nil
	case m.input.Value() != "":
		m.input.SetValue("")
		m.queries.Add("")
		m.queries.Flush()
	default:
		m.setFocus(focusSearch)
	}
}

func (m *Browser) chunkSize() int {
	if m.fixedChunk > 0 {
		return m.fixedChunk
	}
	return ChunkSizeForColumns(m.width)
}

// rebuild runs the pipeline against one consistent snapshot.
func (m *Browser) rebuild() {
	if m.catalog == nil {
		return
	}
	view, err := catalog.Build(catalog.Snapshot{
		Groups:    m.catalog.Groups,
		Query:     m.query,
		ChunkSize: m.chunkSize(),
	})
	if err != nil {
		slog.LogAttrs(context.Background(), slog.LevelWarn, "view_build_failed", icerrors.LogAttrs(err)...)
		return
	}
	m.view = view

	m.rows = m.rows[:0]
	for _, g := range view.Groups {
		for _, row := range g.Rows {
			m.rows = append(m.rows, gridRow{icons: row})
		}
	}
	m.clampCursor()
	slog.Debug("view_rebuilt",
		slog.String("query", m.query),
		slog.Int("chunk_size", view.ChunkSize),
		slog.Int("groups", len(view.Groups)),
		slog.Int("icons", view.Total()))
}

func (m *Browser) clampCursor() {
	if len(m.rows) == 0 {
		m.cursorRow, m.cursorCol = 0, 0
		return
	}
	m.cursorRow = min(max(m.cursorRow, 0), len(m.rows)-1)
	m.cursorCol = min(max(m.cursorCol, 0), len(m.rows[m.cursorRow].icons)-1)
}

func (m *Browser) moveRow(delta int) {
	m.cursorRow += delta
	m.clampCursor()
}

// step moves the cursor one icon, wrapping across row ends.
func (m *Browser) step(delta int) {
	if len(m.rows) == 0 {
		return
	}
	col := m.cursorCol + delta
	switch {
	case col < 0 && m.cursorRow > 0:
		m.cursorRow--
		m.cursorCol = len(m.rows[m.cursorRow].icons) - 1
	case col >= len(m.rows[m.cursorRow].icons) && m.cursorRow < len(m.rows)-1:
		m.cursorRow++
		m.cursorCol = 0
	default:
		m.cursorCol = col
		m.clampCursor()
	}
}

// current returns the icon under the cursor.
func (m *Browser) current() (catalog.Icon, bool) {
	if len(m.rows) == 0 {
		return catalog.Icon{}, false
	}
	return m.rows[m.cursorRow].icons[m.cursorCol], true
}

func (m *Browser) toggleSelect() {
	icon, ok := m.current()
	if !ok {
		return
	}
	if m.selected != nil && sameIcon(*m.selected, icon) {
		m.selected = nil
		return
	}
	m.selected = &icon
	slog.Debug("icon_selected", slog.String("set", icon.Set), slog.String("name", icon.Name))
}

func sameIcon(a, b catalog.Icon) bool {
	return a.Set == b.Set && a.Section == b.Section && a.Name == b.Name
}

// copyTarget copies the selected icon's identifier, or the one under the
// cursor when nothing is selected.
func (m *Browser) copyTarget() tea.Cmd {
	icon, ok := m.current()
	if m.selected != nil {
		icon, ok = *m.selected, true
	}
	if !ok {
		return nil
	}
	id := QualifiedID(icon)
	if err := m.copy(id); err != nil {
		slog.Warn("clipboard_write_failed", slog.String("error", err.Error()))
		return m.setFlash("copy failed: " + err.Error())
	}
	return m.setFlash("copied " + id)
}

func (m *Browser) setFlash(text string) tea.Cmd {
	m.flashID++
	id := m.flashID
	m.flash = text
	return tea.Tick(flashTimeout, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

// prefetch warms the asset cache for the tiles in view.
func (m *Browser) prefetch() tea.Cmd {
	if m.catalog == nil || m.resolver.Root() == "" {
		return nil
	}
	var icons []catalog.Icon
	for _, g := range m.view.Groups {
		icons = append(icons, g.Icons()...)
	}
	if len(icons) == 0 {
		return nil
	}
	dark := m.dark
	r := m.resolver
	ctx := m.ctx
	return func() tea.Msg {
		err := r.Prefetch(ctx, icons, func(icon catalog.Icon) []assets.Variant {
			return []assets.Variant{assets.TileVariant(icon, dark)}
		})
		if err != nil {
			slog.Debug("asset_prefetch_stopped", slog.String("error", err.Error()))
		}
		return nil
	}
}

// View implements tea.Model.
func (m *Browser) View() string {
	if m.quitting {
		return ""
	}

	header := m.renderHeader()
	switch {
	case m.loadErr != nil:
		return strings.Join([]string{
			header,
			"",
			m.styles.Error.Render(icerrors.FormatForUser(m.loadErr)),
			"",
			m.styles.Help.Render("ctrl+c to quit"),
		}, "\n")
	case m.catalog == nil:
		status := m.loader.Status()
		elapsed := formatDuration(time.Duration(status.ElapsedMS) * time.Millisecond)
		return header + "\n\n" + fmt.Sprintf("%s Loading %s... %s",
			m.spinner.View(), status.Source, m.styles.Dim.Render(elapsed))
	}

	input := m.input.View()
	footer := m.renderFooter()
	status := m.renderStatusBar()

	budget := 0
	if m.height > 0 {
		budget = m.height - lipgloss.Height(header) - lipgloss.Height(input) - lipgloss.Height(status)
		if footer != "" {
			budget -= lipgloss.Height(footer)
		}
		budget = max(budget, 1)
	}

	sections := []string{header, input, m.renderGrid(budget)}
	if footer != "" {
		sections = append(sections, footer)
	}
	sections = append(sections, status)
	return strings.Join(sections, "\n")
}

func (m *Browser) renderHeader() string {
	title := m.styles.Header.Render("iconcat")
	if m.catalog == nil {
		return title
	}
	theme := "light"
	if m.dark {
		theme = "dark"
	}
	stats := m.catalog.Stats()
	info := fmt.Sprintf(" • %d sets, %d groups, %d icons • showing %d • %s",
		stats.Sets, stats.Groups, stats.Icons, m.view.Total(), theme)
	return title + m.styles.Dim.Render(info)
}

func (m *Browser) renderGrid(budget int) string {
	if m.view.Empty() {
		return m.styles.Dim.Render(noResults(m.query))
	}

	chunk := max(m.view.ChunkSize, 1)
	tileWidth := max(minTileWidth, m.width/chunk-1)

	var lines []string
	cursorLine := 0
	ri := 0
	for _, g := range m.view.Groups {
		lines = append(lines, m.styles.Group.Render(g.Title)+m.styles.Count.Render(fmt.Sprintf(" (%d)", g.Total)))
		for range g.Rows {
			if ri == m.cursorRow {
				cursorLine = len(lines)
			}
			lines = append(lines, m.renderRow(ri, tileWidth))
			ri++
		}
	}
	return strings.Join(window(lines, cursorLine, budget), "\n")
}

func (m *Browser) renderRow(ri, tileWidth int) string {
	row := m.rows[ri].icons
	tiles := make([]string, len(row))
	for col, icon := range row {
		v := assets.TileVariant(icon, m.dark)
		marker := "○ "
		if v.Dark {
			marker = "● "
		}
		label := pad(truncate(marker+icon.DisplayName(), tileWidth), tileWidth)

		style := m.styles.Tile
		switch {
		case m.focus == focusGrid && ri == m.cursorRow && col == m.cursorCol:
			style = m.styles.TileCursor
		case m.selected != nil && sameIcon(*m.selected, icon):
			style = m.styles.TileSelected
		case m.resolver.Root() != "" && !m.resolver.Exists(icon, v):
			style = m.styles.TileMissing
		}
		tiles[col] = style.Render(label)
	}
	return strings.Join(tiles, " ")
}

// window returns at most budget lines keeping focus visible. A
// non-positive budget keeps everything.
func window(lines []string, focus, budget int) []string {
	if budget <= 0 || len(lines) <= budget {
		return lines
	}
	start := min(max(focus-budget/2, 0), len(lines)-budget)
	return lines[start : start+budget]
}

func (m *Browser) renderFooter() string {
	if m.selected == nil {
		return ""
	}
	icon := *m.selected
	lines := detailLines(icon, m.resolver.Footer(icon), m.styles)
	return m.styles.Footer.Width(max(m.width-2, 20)).Render(strings.Join(lines, "\n"))
}

func (m *Browser) renderStatusBar() string {
	if m.flash != "" {
		return m.styles.Success.Render(m.flash)
	}
	if m.focus == focusSearch {
		return m.help.View(searchHelp{m.keys})
	}
	return m.help.View(gridHelp{m.keys})
}
