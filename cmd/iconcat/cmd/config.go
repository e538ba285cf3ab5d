package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/iconcat/internal/config"
	"github.com/Aman-CERP/iconcat/internal/output"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Inspect and create iconcat configuration.

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. User config (~/.config/iconcat/config.yaml)
  3. Project config (.iconcat.yaml)
  4. Environment variables (ICONCAT_*)
  5. Command-line flags (--catalog, --assets)`,
		Example: `  # Create user config with the defaults
  iconcat config init

  # Show effective configuration
  iconcat config show

  # Print user config file path
  iconcat config path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd(g))
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create user configuration file",
		Long: `Write the default configuration to the user config file
(~/.config/iconcat/config.yaml, or $XDG_CONFIG_HOME/iconcat/config.yaml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func newConfigShowCmd(g *globalOptions) *cobra.Command {
	var (
		jsonOutput bool
		source     string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the configuration after merging all sources, or the
hardcoded defaults with --source defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, g, jsonOutput, source)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&source, "source", "merged", "Config source: merged, defaults")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print user config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.GetUserConfigPath())
			return err
		},
	}
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	out := output.New(cmd.OutOrStdout())
	path := config.GetUserConfigPath()

	if _, err := os.Stat(path); err == nil && !force {
		out.Warning("User configuration already exists")
		out.KeyValue("Location", path)
		out.Status("", "Use --force to overwrite it with the defaults")
		return nil
	}

	data, err := config.NewConfig().YAML()
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out.Success("Created user configuration")
	out.KeyValue("Location", path)
	out.Status("", "Run 'iconcat config show' to verify")
	return nil
}

func runConfigShow(cmd *cobra.Command, g *globalOptions, jsonOutput bool, source string) error {
	var (
		cfg        *config.Config
		sourceDesc string
		err        error
	)

	switch source {
	case "merged":
		cfg, err = g.loadConfig()
		if err != nil {
			return err
		}
		sourceDesc = "merged (defaults + user + project + env + flags)"
		if g.configPath != "" {
			sourceDesc = fmt.Sprintf("file (%s) + env + flags", g.configPath)
		}
	case "defaults":
		cfg = config.NewConfig()
		sourceDesc = "defaults (hardcoded)"
	default:
		return fmt.Errorf("invalid source: %s (use: merged, defaults)", source)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	data, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	out := output.New(cmd.OutOrStdout())
	out.KeyValue("Source", sourceDesc)
	out.Code(string(data))
	return nil
}
