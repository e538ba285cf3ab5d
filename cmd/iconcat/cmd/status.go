package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/iconcat/internal/async"
	"github.com/Aman-CERP/iconcat/internal/ui"
)

// statusTimeout bounds how long status waits for the catalog.
const statusTimeout = 30 * time.Second

func newStatusCmd(g *globalOptions) *cobra.Command {
	var (
		jsonOutput bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Load the catalog and report what it holds",
		Long: `Load the configured catalog and report its set, group and icon counts,
the load time, and whether the asset root exists.

A catalog that fails to load is reported, not returned as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd.Context(), cmd, g, jsonOutput, noColor)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors")

	return cmd
}

func runStatus(ctx context.Context, cmd *cobra.Command, g *globalOptions, jsonOutput, noColor bool) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	loader := async.NewLoader(cfg.Catalog.Path)
	loader.Start(ctx)
	if err := loader.Wait(ctx); err != nil && ctx.Err() != nil {
		return err
	}

	root := cfg.AssetsRoot()
	info := ui.StatusInfo{
		Load:       loader.Status(),
		AssetsRoot: root,
		AssetsDir:  isDir(root),
	}

	out := cmd.OutOrStdout()
	renderer := ui.NewStatusRenderer(out, noColor || cfg.Browse.NoColor || !ui.IsTTY(out))
	if jsonOutput {
		return renderer.RenderJSON(info)
	}
	return renderer.Render(info)
}
