package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/iconcat/internal/catalog"
	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
	"github.com/Aman-CERP/iconcat/internal/ui"
)

// defaultSearchWidth is the layout width for one-shot searches.
const defaultSearchWidth = 1200

// searchOptions holds CLI flags for search.
type searchOptions struct {
	width   int
	chunk   int
	format  string // "text", "json"
	noColor bool
}

func newSearchCmd(g *globalOptions) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the catalog once and print the result",
		Long: `Run the catalog pipeline once: filter by query, sort, and lay the
matches out in rows.

The query matches set names, sections and icon names, ignoring case.
Dashes in icon names read as spaces. With no query every icon is listed.

Row length comes from --chunk, or from the breakpoint for --width pixels.`,
		Example: `  iconcat search arrow
  iconcat search quick fix --chunk 4
  iconcat search nodes --width 800 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, g, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", defaultSearchWidth, "Layout width in pixels; picks icons per row")
	cmd.Flags().IntVar(&opts.chunk, "chunk", 0, "Icons per row (overrides --width)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colors")
	cmd.MarkFlagsMutuallyExclusive("width", "chunk")

	return cmd
}

func runSearch(cmd *cobra.Command, g *globalOptions, query string, opts searchOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return icerrors.ValidationError(fmt.Sprintf("unknown format %q", opts.format), nil).
			WithSuggestion("Use --format text or --format json")
	}
	if cmd.Flags().Changed("chunk") && opts.chunk <= 0 {
		return icerrors.New(icerrors.ErrCodeInvalidChunkSize, fmt.Sprintf("chunk size must be positive, got %d", opts.chunk), nil)
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	c, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	chunk := opts.chunk
	if chunk <= 0 {
		chunk = ui.ChunkSizeForWidth(opts.width)
	}

	start := time.Now()
	view, err := c.View(query, chunk)
	if err != nil {
		return err
	}
	slog.Debug("search_completed",
		slog.String("query", query),
		slog.Int("chunk_size", chunk),
		slog.Int("groups", len(view.Groups)),
		slog.Int("icons", view.Total()),
		slog.Duration("duration", time.Since(start)))

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	renderer := ui.NewPlainRenderer(ui.NewConfig(out,
		ui.WithNoColor(opts.noColor || cfg.Browse.NoColor || !ui.IsTTY(out)),
		ui.WithChunkSize(chunk)))
	return renderer.RenderView(view)
}
