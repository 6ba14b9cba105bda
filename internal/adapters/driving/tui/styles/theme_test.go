package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_Palette(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color("#005A3C"), theme.Primary)
	for name, c := range map[string]lipgloss.Color{
		"Secondary":  theme.Secondary,
		"Foreground": theme.Foreground,
		"Muted":      theme.Muted,
		"Highlight":  theme.Highlight,
		"Error":      theme.Error,
		"Border":     theme.Border,
	} {
		assert.NotEmpty(t, string(c), name)
	}
}

func TestDefaultTheme_AccentsDiffer(t *testing.T) {
	theme := DefaultTheme()

	accents := []lipgloss.Color{theme.Primary, theme.Secondary, theme.Highlight, theme.Error}
	seen := make(map[lipgloss.Color]bool)
	for _, c := range accents {
		assert.False(t, seen[c], "accent %s used twice", c)
		seen[c] = true
	}
}

func TestNewStyles_KeepsTheme(t *testing.T) {
	theme := DefaultTheme()
	theme.Primary = lipgloss.Color("#000000")

	s := NewStyles(theme)

	assert.Same(t, theme, s.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s.Theme())
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestStyles_CellPadding(t *testing.T) {
	s := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Header":   s.Header,
		"Cell":     s.Cell,
		"Selected": s.Selected,
		"Value":    s.Value,
	} {
		assert.Equal(t, 1, style.GetPaddingLeft(), name)
		assert.Equal(t, 1, style.GetPaddingRight(), name)
	}
	assert.Contains(t, s.Value.Render("1.13"), "1.13")
	assert.Contains(t, s.Title.Render("Databolaget"), "Databolaget")
}
