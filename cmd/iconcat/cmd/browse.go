package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/async"
	"github.com/Aman-CERP/iconcat/internal/catalog"
	"github.com/Aman-CERP/iconcat/internal/config"
	"github.com/Aman-CERP/iconcat/internal/ui"
	"github.com/Aman-CERP/iconcat/internal/watcher"
)

// plainColumns is the width assumed when output is not a terminal.
const plainColumns = 80

type browseOptions struct {
	chunk   int
	dark    bool
	noColor bool
}

func newBrowseCmd(g *globalOptions) *cobra.Command {
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Long: `Open the interactive icon browser.

Type to filter by set, section or icon name. The grid re-flows to the
terminal width. When output is not a terminal the whole catalog is
printed instead.`,
		Example: `  iconcat browse
  iconcat browse --catalog icons.json --assets ./icons --dark
  iconcat browse > catalog.txt`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationTerminal: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context(), cmd, g, opts)
		},
	}

	cmd.Flags().IntVar(&opts.chunk, "chunk", 0, "Icons per row (default: from terminal width)")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Start in the dark theme")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colors")

	return cmd
}

func runBrowse(ctx context.Context, cmd *cobra.Command, g *globalOptions, opts browseOptions) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dark := opts.dark || cfg.DarkTheme()
	noColor := opts.noColor || cfg.Browse.NoColor

	if !ui.Interactive(out) {
		slog.Debug("browse_plain_fallback")
		return printCatalog(out, cfg, ui.NewConfig(out,
			ui.WithNoColor(noColor),
			ui.WithDarkTheme(dark),
			ui.WithChunkSize(opts.chunk)))
	}

	window, err := cfg.DebounceWindow()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loader := async.NewLoader(cfg.Catalog.Path)
	loader.Start(ctx)
	resolver := newResolver(cfg)

	browser := ui.NewBrowser(ui.BrowserOptions{
		Loader:    loader,
		Resolver:  resolver,
		Debounce:  window,
		Dark:      dark,
		NoColor:   noColor,
		ChunkSize: opts.chunk,
	})
	program := ui.NewProgram(ctx, browser, tea.WithOutput(out))

	if cfg.Assets.Watch {
		stop := watchAssets(ctx, resolver, window, func(ev watcher.AssetEvent) {
			program.Send(ui.AssetsChangedMsg{Path: ev.Path})
		})
		defer stop()
	}

	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// printCatalog writes the full catalog without a terminal.
func printCatalog(out io.Writer, cfg *config.Config, uiCfg ui.Config) error {
	c, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	chunk := uiCfg.ChunkSize
	if chunk <= 0 {
		chunk = ui.ChunkSizeForColumns(plainColumns)
	}
	view, err := c.View("", chunk)
	if err != nil {
		return err
	}
	return ui.NewPlainRenderer(uiCfg).RenderView(view)
}

// watchAssets purges the resolver cache after each burst of changes under
// the asset root and then calls notify. It returns a stop function. A
// missing asset root is not watched.
func watchAssets(ctx context.Context, resolver *assets.Resolver, window time.Duration, notify func(watcher.AssetEvent)) func() {
	root := resolver.Root()
	if !isDir(root) {
		slog.Debug("asset_watch_skipped", slog.String("root", root))
		return func() {}
	}

	w, err := watcher.NewAssetWatcher(watcher.Options{DebounceWindow: window}, func(ev watcher.AssetEvent) {
		resolver.Purge()
		slog.Debug("asset_cache_purged",
			slog.String("path", ev.Path),
			slog.String("op", ev.Operation.String()))
		if notify != nil {
			notify(ev)
		}
	})
	if err != nil {
		slog.Warn("asset_watch_failed", slog.String("error", err.Error()))
		return func() {}
	}

	go func() {
		if err := w.Start(ctx, root); err != nil && ctx.Err() == nil {
			slog.Warn("asset_watch_stopped", slog.String("error", err.Error()))
		}
	}()
	return func() { _ = w.Stop() }
}
