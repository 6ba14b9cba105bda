// Package keymap defines keybindings for the product browser.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the browser.
// Printable keys go to the search field, so actions use control keys.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Clear empties the search field, or quits when it is already empty.
	Clear key.Binding

	// Up navigates up in the table.
	Up key.Binding

	// Down navigates down in the table.
	Down key.Binding

	// PageUp and PageDown move a screen at a time.
	PageUp   key.Binding
	PageDown key.Binding

	// Open opens the selected product page.
	Open key.Binding

	// Copy copies the selected product URL.
	Copy key.Binding

	// NextSort and PrevSort cycle the sort order.
	NextSort key.Binding
	PrevSort key.Binding

	// Assortment cycles the assortment filter.
	Assortment key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy link"),
		),
		NextSort: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sort"),
		),
		PrevSort: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "sort back"),
		),
		Assortment: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "assortment"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.NextSort, k.Assortment, k.Clear, k.Quit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Open, k.Copy},
		{k.NextSort, k.PrevSort, k.Assortment},
		{k.Clear, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
