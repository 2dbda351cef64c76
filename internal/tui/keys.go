package tui

import "github.com/charmbracelet/bubbles/key"

// pagerKeys holds key bindings for the pager.
type pagerKeys struct {
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns the pager bindings for the help bar.
func (k pagerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns the pager bindings grouped for expanded help.
func (k pagerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Help, k.Quit},
	}
}

// PagerKeyMap returns the key bindings for the pager.
func PagerKeyMap() pagerKeys {
	return pagerKeys{
		Next: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/l/space", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
