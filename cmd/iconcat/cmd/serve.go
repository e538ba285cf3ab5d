package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/iconcat/internal/async"
	"github.com/Aman-CERP/iconcat/internal/mcp"
	"github.com/Aman-CERP/iconcat/internal/watcher"
)

func newServeCmd(g *globalOptions) *cobra.Command {
	var transport string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol server on stdin/stdout.

The catalog loads in the background; tools answer "catalog is loading"
until it is ready. Stdout carries only JSON-RPC messages. Use --debug to
log to ~/.iconcat/logs/iconcat.log.`,
		Example: `  iconcat serve --catalog icons.json --assets ./icons`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), g, transport)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type (only stdio is supported)")

	return cmd
}

func runServe(ctx context.Context, g *globalOptions, transport string) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(ctx)
	defer cancel()

	loader := async.NewLoader(cfg.Catalog.Path)
	loader.Start(ctx)
	resolver := newResolver(cfg)

	if cfg.Assets.Watch {
		window, err := cfg.DebounceWindow()
		if err != nil {
			return err
		}
		stop := watchAssets(ctx, resolver, window, func(ev watcher.AssetEvent) {
			slog.Info("assets_changed", slog.String("path", ev.Path))
		})
		defer stop()
	}

	server, err := mcp.NewServer(loader, resolver)
	if err != nil {
		return err
	}

	err = server.Serve(ctx, transport)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
