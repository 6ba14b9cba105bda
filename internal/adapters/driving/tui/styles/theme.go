// Package styles holds the browser's colours and lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette.
type Theme struct {
	Primary    lipgloss.Color // selection background
	Secondary  lipgloss.Color // titles and table headers
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Highlight  lipgloss.Color // apk values
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the Systembolaget-inspired palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#005A3C"),
		Secondary:  lipgloss.Color("#F2C94C"),
		Foreground: lipgloss.Color("#E6E6E6"),
		Muted:      lipgloss.Color("#7F8487"),
		Highlight:  lipgloss.Color("#6FCF97"),
		Error:      lipgloss.Color("#EB5757"),
		Border:     lipgloss.Color("#4F5557"),
	}
}

// Styles are the rendered styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	// Table cells. Header and Cell carry one column of padding on each
	// side; Selected marks the cursor row and Value the apk column.
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
}

// NewStyles builds styles from theme, or from DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	cell := lipgloss.NewStyle().Padding(0, 1)

	return &Styles{
		theme:      theme,
		Title:      lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:     lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:      lipgloss.NewStyle().Foreground(theme.Muted),
		Error:      lipgloss.NewStyle().Foreground(theme.Error),
		StatusBar:  lipgloss.NewStyle().Foreground(theme.Muted).Padding(0, 1),
		InputField: lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Border).Padding(0, 1),

		Header:   cell.Bold(true).Foreground(theme.Secondary),
		Cell:     cell.Foreground(theme.Foreground),
		Selected: cell.Bold(true).Foreground(theme.Foreground).Background(theme.Primary),
		Value:    cell.Bold(true).Foreground(theme.Highlight),
	}
}

// DefaultStyles returns NewStyles(DefaultTheme()).
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
