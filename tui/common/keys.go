package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit           key.Binding
	ForceQuit      key.Binding
	Refresh        key.Binding // r: pull-to-refresh
	Up             key.Binding
	Down           key.Binding
	Top            key.Binding
	Bottom         key.Binding
	Open           key.Binding // enter: open detail
	Back           key.Binding
	ByCategory     key.Binding // c: quotes in the selected quote's category
	ByAuthor       key.Binding // a: quotes by the selected quote's author
	BrowseCategory key.Binding // C: category browser
	BrowseAuthor   key.Binding // A: author browser
	SwitchTab      key.Binding
	ToggleHints    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		ByCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "same category"),
		),
		ByAuthor: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "same author"),
		),
		BrowseCategory: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "categories"),
		),
		BrowseAuthor: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "authors"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keys"),
		),
	}
}

// HelpLine renders bindings the way the status bar shows them: "k: desc • k: desc".
func HelpLine(bindings ...key.Binding) string {
	out := ""
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if out != "" {
			out += " • "
		}
		out += h.Key + ": " + h.Desc
	}
	return out
}
