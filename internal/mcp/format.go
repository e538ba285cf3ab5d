package mcp

import (
	"fmt"
	"strings"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/catalog"
)

// ToIconOutput converts a catalog icon to its tool output form.
func ToIconOutput(icon catalog.Icon) IconOutput {
	path := assets.RelPath(icon, assets.TileVariant(icon, false))
	return IconOutput{
		Name:        icon.Name,
		DisplayName: icon.DisplayName(),
		Set:         icon.Set,
		Section:     icon.Section,
		Format:      icon.Format.String(),
		Dark:        icon.Dark,
		OnlyDark:    icon.OnlyDark(),
		HiDPI:       icon.HiDPI,
		Qualified:   icon.Qualified,
		Path:        path,
		URI:         assetURIPrefix + path,
	}
}

// FormatSearchResults renders search output as markdown.
func FormatSearchResults(out SearchIconsOutput) string {
	var sb strings.Builder

	if out.Total == 0 {
		if out.Query == "" {
			return "The catalog has no icons."
		}
		return fmt.Sprintf("No icons match %q.", out.Query)
	}

	if out.Query == "" {
		fmt.Fprintf(&sb, "## %d icons\n\n", out.Total)
	} else {
		fmt.Fprintf(&sb, "## %d icons matching %q\n\n", out.Total, out.Query)
	}

	for _, g := range out.Groups {
		fmt.Fprintf(&sb, "### %s\n\n", g.Title)
		for _, icon := range g.Icons {
			fmt.Fprintf(&sb, "- **%s** `%s` (%s", icon.DisplayName, icon.Path, icon.Format)
			if icon.Dark {
				sb.WriteString(", dark")
			}
			sb.WriteString(")")
			if icon.Qualified != "" {
				fmt.Fprintf(&sb, " %s", icon.Qualified)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if out.Truncated {
		fmt.Fprintf(&sb, "_Showing %d of %d. Raise the limit or refine the query._\n", out.Returned, out.Total)
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// FormatIconDetails renders icon details as markdown.
func FormatIconDetails(out IconDetailsOutput) string {
	var sb strings.Builder
	icon := out.Icon

	fmt.Fprintf(&sb, "## %s\n\n", icon.DisplayName)
	fmt.Fprintf(&sb, "- **Set:** %s\n", icon.Set)
	if icon.Section != "" {
		fmt.Fprintf(&sb, "- **Section:** %s\n", icon.Section)
	}
	fmt.Fprintf(&sb, "- **Format:** %s\n", icon.Format)
	if icon.Qualified != "" {
		fmt.Fprintf(&sb, "- **Qualified:** `%s`\n", icon.Qualified)
	}
	fmt.Fprintf(&sb, "- **Sizes:** %s (display %s)\n", strings.Join(out.Sizes, ", "), out.DisplaySize)

	sb.WriteString("\n### Variants\n\n")
	if len(out.Variants) == 0 {
		sb.WriteString("None.\n")
	}
	for _, v := range out.Variants {
		presence := "present"
		if !v.Exists {
			presence = "missing"
		}
		fmt.Fprintf(&sb, "- %s `%s` %s, %s\n", v.Label, v.RelPath, v.Size, presence)
	}
	return sb.String()
}

// clampLimit ensures limit is within bounds.
func clampLimit(limit, defaultVal, min, max int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
