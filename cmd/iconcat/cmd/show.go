package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/catalog"
	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
	"github.com/Aman-CERP/iconcat/internal/ui"
)

type showOptions struct {
	section    string
	jsonOutput bool
	noColor    bool
}

// iconDetail is the JSON form of show.
type iconDetail struct {
	Icon        catalog.Icon      `json:"icon"`
	Qualified   string            `json:"qualified_id"`
	DisplaySize catalog.Size      `json:"display_size"`
	Variants    []assets.Resolved `json:"variants"`
	AssetsRoot  string            `json:"assets_root"`
}

func newShowCmd(g *globalOptions) *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show <set> <name>",
		Short: "Show one icon with its asset variants",
		Long: `Show one icon: format, sizes, qualified identifier, and every
light/dark/@2x variant with its asset path and whether the file exists.

Without --section the icon is looked up across the set's sections; the
command fails if the name is ambiguous.`,
		Example: `  iconcat show Actions close
  iconcat show Nodes folder/open --section tree
  iconcat show Actions add-icon --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, g, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.section, "section", "s", "", "Section holding the icon")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colors")

	return cmd
}

func runShow(cmd *cobra.Command, g *globalOptions, set, name string, opts showOptions) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	c, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	icon, err := findIcon(c, set, name, opts.section, cmd.Flags().Changed("section"))
	if err != nil {
		return err
	}

	resolver := newResolver(cfg)
	variants := resolver.Footer(icon)

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(iconDetail{
			Icon:        icon,
			Qualified:   ui.QualifiedID(icon),
			DisplaySize: assets.DisplaySize(icon, assets.ThumbnailMax),
			Variants:    variants,
			AssetsRoot:  resolver.Root(),
		})
	}

	renderer := ui.NewPlainRenderer(ui.NewConfig(out,
		ui.WithNoColor(opts.noColor || cfg.Browse.NoColor || !ui.IsTTY(out))))
	return renderer.RenderDetail(icon, variants)
}

// findIcon resolves an icon by exact coordinates when the section is
// given, otherwise by name across the set's sections.
func findIcon(c *catalog.Catalog, set, name, section string, sectionGiven bool) (catalog.Icon, error) {
	if sectionGiven {
		return c.Find(set, section, name)
	}

	matches := c.Lookup(set, name)
	switch len(matches) {
	case 0:
		return catalog.Icon{}, icerrors.New(icerrors.ErrCodeIconNotFound, "icon not found", nil).
			WithDetail("set", set).
			WithDetail("name", name).
			WithSuggestion(fmt.Sprintf("Run 'iconcat search %s' to list matching icons", name))
	case 1:
		return matches[0], nil
	default:
		sections := make([]string, len(matches))
		for i, icon := range matches {
			sections[i] = fmt.Sprintf("%q", icon.Section)
		}
		return catalog.Icon{}, icerrors.ValidationError(
			fmt.Sprintf("%s/%s exists in several sections", set, name), nil).
			WithSuggestion("Pass --section, one of " + strings.Join(sections, ", "))
	}
}
