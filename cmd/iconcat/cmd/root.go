// Package cmd provides the CLI commands for iconcat.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/config"
	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
	"github.com/Aman-CERP/iconcat/internal/logging"
	"github.com/Aman-CERP/iconcat/internal/profiling"
	"github.com/Aman-CERP/iconcat/pkg/version"
)

// annotationTerminal marks commands that own the terminal. They never log
// to stderr.
const annotationTerminal = "iconcat/terminal"

// globalOptions holds the persistent flags and the per-run state they set
// up.
type globalOptions struct {
	debug       bool
	configPath  string
	catalogPath string
	assetsRoot  string
	profile     profiling.Options

	profiler       *profiling.Session
	loggingCleanup func() error
}

// NewRootCmd creates the root command for the iconcat CLI.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "iconcat",
		Short: "Browse and search an icon catalog",
		Long: `iconcat loads an icon catalog, groups its icons by set and section,
and lets you search them from a terminal browser, the command line, or an
MCP client.

Run 'iconcat' with no arguments to open the browser.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{annotationTerminal: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context(), cmd, g, browseOptions{})
		},
	}

	cmd.SetVersionTemplate("iconcat version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging to ~/.iconcat/logs/")
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file (default: user and project config)")
	cmd.PersistentFlags().StringVar(&g.catalogPath, "catalog", "", "Catalog file (.json, .yaml, .yml)")
	cmd.PersistentFlags().StringVar(&g.assetsRoot, "assets", "", "Asset root directory")

	cmd.PersistentFlags().StringVar(&g.profile.CPU, "profile-cpu", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&g.profile.Heap, "profile-mem", "", "Write memory profile to file")
	cmd.PersistentFlags().StringVar(&g.profile.Trace, "profile-trace", "", "Write execution trace to file")
	for _, name := range []string{"profile-cpu", "profile-mem", "profile-trace"} {
		_ = cmd.PersistentFlags().MarkHidden(name)
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return g.start(cmd)
	}
	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return g.stop()
	}

	cmd.AddCommand(newBrowseCmd(g))
	cmd.AddCommand(newSearchCmd(g))
	cmd.AddCommand(newShowCmd(g))
	cmd.AddCommand(newServeCmd(g))
	cmd.AddCommand(newStatusCmd(g))
	cmd.AddCommand(newConfigCmd(g))
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// start sets up logging and profiling for one run.
func (g *globalOptions) start(cmd *cobra.Command) error {
	if g.debug {
		logCfg := logging.DebugConfig()
		if cfg, err := g.loadConfig(); err == nil {
			logCfg.MaxSizeMB = cfg.Log.MaxSizeMB
			logCfg.MaxBackups = cfg.Log.MaxBackups
			if cfg.Log.Dir != "" {
				logCfg.FilePath = logging.LogPathIn(cfg.Log.Dir)
			}
		}
		logger, cleanup, err := logging.Setup(logCfg)
		if err != nil {
			return fmt.Errorf("failed to setup debug logging: %w", err)
		}
		g.loggingCleanup = cleanup
		slog.SetDefault(logger)
		slog.Info("debug_logging_enabled",
			slog.String("log_file", logCfg.FilePath),
			slog.String("command", cmd.Name()),
			slog.String("version", version.Version))
	} else if cmd.Annotations[annotationTerminal] == "true" {
		slog.SetDefault(logging.Quiet(nil))
	} else {
		slog.SetDefault(logging.Quiet(cmd.ErrOrStderr()))
	}

	if g.profile.Enabled() {
		s, err := profiling.Start(g.profile)
		if err != nil {
			return err
		}
		g.profiler = s
	}
	return nil
}

// stop flushes profiles and closes the log file.
func (g *globalOptions) stop() error {
	var err error
	if g.profiler != nil {
		err = g.profiler.Stop()
		g.profiler = nil
	}
	if g.loggingCleanup != nil {
		slog.Info("debug_logging_stopped")
		slog.SetDefault(logging.Quiet(nil))
		_ = g.loggingCleanup()
		g.loggingCleanup = nil
	}
	return err
}

// loadConfig loads the layered configuration, or the --config file alone,
// then applies --catalog and --assets.
func (g *globalOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFile(g.configPath)
	} else {
		dir, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("get working directory: %w", wdErr)
		}
		cfg, err = config.Load(dir)
	}
	if err != nil {
		return nil, err
	}

	if g.catalogPath != "" {
		cfg.Catalog.Path = g.catalogPath
	}
	if g.assetsRoot != "" {
		cfg.Catalog.AssetsRoot = g.assetsRoot
	}
	return cfg, nil
}

// newResolver builds the asset resolver configured by cfg.
func newResolver(cfg *config.Config) *assets.Resolver {
	return assets.NewResolver(cfg.AssetsRoot(), assets.ResolverOptions{
		CacheSize:       cfg.Assets.CacheSize,
		PrefetchWorkers: cfg.Assets.PrefetchWorkers,
	})
}

// isDir reports whether path is an existing directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// signalContext cancels on SIGINT and SIGTERM.
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root, err)
		return 1
	}
	return 0
}

// printError reports err on stderr. Coded errors get their hint and code.
func printError(cmd *cobra.Command, err error) {
	if icerrors.GetCode(err) != "" {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), icerrors.FormatForCLI(err))
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
