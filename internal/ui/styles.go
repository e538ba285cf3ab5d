package ui

import "github.com/charmbracelet/lipgloss"

// Color palette: one lime accent on a gray scale.
const (
	ColorLime     = "154" // Primary accent (#AFFF00)
	ColorLimeDim  = "106" // Borders, inactive accent
	ColorOlive    = "64"  // Accent readable on light backgrounds
	ColorWhite    = "255"
	ColorBlack    = "232"
	ColorGray     = "245" // Secondary text, labels
	ColorDarkGray = "238" // Separators
	ColorPaper    = "254" // Light theme tile background
	ColorInk      = "236" // Dark theme tile background
	ColorRed      = "196" // Errors
	ColorYellow   = "220" // Warnings
)

// Styles holds all styles the browser and plain renderers use.
type Styles struct {
	Header  lipgloss.Style
	Group   lipgloss.Style
	Count   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
	Label   lipgloss.Style

	Tile         lipgloss.Style
	TileCursor   lipgloss.Style
	TileSelected lipgloss.Style
	TileMissing  lipgloss.Style

	Prompt lipgloss.Style
	Footer lipgloss.Style
	Help   lipgloss.Style
}

// LightStyles returns the light theme.
func LightStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorOlive)),
		Group:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBlack)),
		Count:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOlive)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),

		Tile: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlack)).
			Background(lipgloss.Color(ColorPaper)),
		TileCursor: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorOlive)),
		TileSelected: lipgloss.NewStyle().Bold(true).Underline(true).
			Foreground(lipgloss.Color(ColorOlive)).
			Background(lipgloss.Color(ColorPaper)),
		TileMissing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray)).
			Background(lipgloss.Color(ColorPaper)),

		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorOlive)),
		Footer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorGray)).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}

// DarkStyles returns the dark theme.
func DarkStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Group:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Count:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),

		Tile: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorInk)),
		TileCursor: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(ColorBlack)).
			Background(lipgloss.Color(ColorLime)),
		TileSelected: lipgloss.NewStyle().Bold(true).Underline(true).
			Foreground(lipgloss.Color(ColorLime)).
			Background(lipgloss.Color(ColorInk)),
		TileMissing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDarkGray)).
			Background(lipgloss.Color(ColorInk)),

		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Footer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorLimeDim)).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
	}
}

// NoColorStyles returns unstyled components for plain mode. Cursor and
// selection keep reverse video and underline so they stay visible.
func NoColorStyles() Styles {
	return Styles{
		Header:       lipgloss.NewStyle(),
		Group:        lipgloss.NewStyle(),
		Count:        lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle(),
		Warning:      lipgloss.NewStyle(),
		Error:        lipgloss.NewStyle(),
		Dim:          lipgloss.NewStyle(),
		Label:        lipgloss.NewStyle(),
		Tile:         lipgloss.NewStyle(),
		TileCursor:   lipgloss.NewStyle().Reverse(true),
		TileSelected: lipgloss.NewStyle().Underline(true),
		TileMissing:  lipgloss.NewStyle(),
		Prompt:       lipgloss.NewStyle(),
		Footer:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Help:         lipgloss.NewStyle(),
	}
}

// GetStyles returns the styles for a theme and color preference.
func GetStyles(noColor, dark bool) Styles {
	switch {
	case noColor:
		return NoColorStyles()
	case dark:
		return DarkStyles()
	default:
		return LightStyles()
	}
}
