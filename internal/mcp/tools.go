package mcp

import (
	"github.com/Aman-CERP/iconcat/internal/assets"
	"github.com/Aman-CERP/iconcat/internal/async"
)

// SearchIconsInput defines the input schema for the search_icons tool.
type SearchIconsInput struct {
	Query string `json:"query" jsonschema:"case-insensitive text matched against set, section and icon name; empty lists everything"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of icons, default 50"`
}

// SearchIconsOutput defines the output schema for the search_icons tool.
type SearchIconsOutput struct {
	Query     string        `json:"query"`
	Total     int           `json:"total" jsonschema:"number of matching icons before the limit"`
	Returned  int           `json:"returned" jsonschema:"number of icons in this response"`
	Truncated bool          `json:"truncated,omitempty" jsonschema:"true if the limit cut the result"`
	Groups    []GroupOutput `json:"groups"`
}

// GroupOutput is one set/section group in search results.
type GroupOutput struct {
	Set     string       `json:"set"`
	Section string       `json:"section"`
	Title   string       `json:"title"`
	Icons   []IconOutput `json:"icons"`
}

// IconOutput describes one icon.
type IconOutput struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Set         string `json:"set"`
	Section     string `json:"section"`
	Format      string `json:"format" jsonschema:"svg or png"`
	Dark        bool   `json:"dark" jsonschema:"true if a dark variant exists"`
	OnlyDark    bool   `json:"only_dark,omitempty"`
	HiDPI       bool   `json:"hidpi"`
	Qualified   string `json:"qualified,omitempty"`
	Path        string `json:"path" jsonschema:"asset path of the default variant, relative to the asset root"`
	URI         string `json:"uri" jsonschema:"resource URI of the default variant asset"`
}

// IconDetailsInput defines the input schema for the icon_details tool.
type IconDetailsInput struct {
	Set     string `json:"set" jsonschema:"icon set name"`
	Section string `json:"section,omitempty" jsonschema:"section name, empty for root icons"`
	Name    string `json:"name" jsonschema:"raw icon name, e.g. add-icon"`
}

// IconDetailsOutput defines the output schema for the icon_details tool.
type IconDetailsOutput struct {
	Icon        IconOutput        `json:"icon"`
	Sizes       []string          `json:"sizes" jsonschema:"standard size first, then high-DPI"`
	DisplaySize string            `json:"display_size" jsonschema:"thumbnail size, clamped to 42 pixels"`
	Variants    []assets.Resolved `json:"variants"`
	AssetsRoot  string            `json:"assets_root,omitempty"`
}

// CatalogStatusInput defines the input schema for the catalog_status tool (no parameters).
type CatalogStatusInput struct{}

// CatalogStatusOutput defines the output schema for the catalog_status tool.
type CatalogStatusOutput struct {
	Load   async.Snapshot `json:"load"`
	Assets AssetsInfo     `json:"assets"`
}

// AssetsInfo describes the asset resolver.
type AssetsInfo struct {
	Root   string `json:"root,omitempty"`
	Cached int    `json:"cached" jsonschema:"number of cached existence probes"`
}
