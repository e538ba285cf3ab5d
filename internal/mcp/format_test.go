package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/catalog"
)

func TestToIconOutput(t *testing.T) {
	icon := catalog.Icon{
		Name:      "add-icon",
		Set:       "Actions",
		Section:   "general",
		Variants:  2,
		Dark:      true,
		Format:    catalog.FormatVector,
		Qualified: "AllIcons.General.Add",
	}

	out := ToIconOutput(icon)

	assert.Equal(t, "add icon", out.DisplayName)
	assert.Equal(t, "vector", out.Format)
	assert.False(t, out.OnlyDark)
	assert.Equal(t, "Actions/general/add-icon.svg", out.Path)
	assert.Equal(t, "iconcat://assets/Actions/general/add-icon.svg", out.URI)
}

func TestFormatSearchResults(t *testing.T) {
	out := SearchIconsOutput{
		Query:     "add",
		Total:     2,
		Returned:  1,
		Truncated: true,
		Groups: []GroupOutput{{
			Set:     "Actions",
			Section: "general",
			Title:   "Actions / general",
			Icons: []IconOutput{{
				DisplayName: "add icon",
				Path:        "Actions/general/add-icon.svg",
				Format:      "svg",
				Dark:        true,
				Qualified:   "AllIcons.General.Add",
			}},
		}},
	}

	got := FormatSearchResults(out)

	assert.Contains(t, got, "## 2 icons matching \"add\"")
	assert.Contains(t, got, "### Actions / general")
	assert.Contains(t, got, "- **add icon** `Actions/general/add-icon.svg` (svg, dark) AllIcons.General.Add")
	assert.Contains(t, got, "_Showing 1 of 2.")
}

func TestFormatSearchResults_Empty(t *testing.T) {
	assert.Equal(t, `No icons match "zzz".`, FormatSearchResults(SearchIconsOutput{Query: "zzz"}))
	assert.Equal(t, "The catalog has no icons.", FormatSearchResults(SearchIconsOutput{}))
}

func TestFormatIconDetails(t *testing.T) {
	out := IconDetailsOutput{
		Icon:        IconOutput{DisplayName: "close", Set: "Actions", Format: "png", Qualified: "AllIcons.Actions.Close"},
		Sizes:       []string{"16x16", "32x32"},
		DisplaySize: "16x16",
		Variants: []assets.Resolved{
			{Label: "light", RelPath: "Actions/close.png", Exists: true, Size: catalog.Size{Width: 16, Height: 16}},
			{Label: "light@2x", RelPath: "Actions/close@2x.png", Size: catalog.Size{Width: 32, Height: 32}},
		},
	}

	got := FormatIconDetails(out)

	assert.Contains(t, got, "## close")
	assert.NotContains(t, got, "Section")
	assert.Contains(t, got, "- **Qualified:** `AllIcons.Actions.Close`")
	assert.Contains(t, got, "- **Sizes:** 16x16, 32x32 (display 16x16)")
	assert.Contains(t, got, "- light `Actions/close.png` 16x16, present")
	assert.Contains(t, got, "- light@2x `Actions/close@2x.png` 32x32, missing")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, clampLimit(0, 50, 1, 500))
	assert.Equal(t, 50, clampLimit(-3, 50, 1, 500))
	assert.Equal(t, 7, clampLimit(7, 50, 1, 500))
	assert.Equal(t, 500, clampLimit(9000, 50, 1, 500))
}
