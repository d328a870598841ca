package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Back     key.Binding

	// Filters
	Search          key.Binding
	ToggleMega      key.Binding
	ToggleGmax      key.Binding
	ToggleOther     key.Binding
	CycleCapture    key.Binding
	PrevGeneration  key.Binding
	NextGeneration  key.Binding
	ClearGeneration key.Binding

	// Display
	ToggleStyle key.Binding
	ToggleShiny key.Binding

	// Application
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn", "page down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ToggleMega: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mega forms"),
		),
		ToggleGmax: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "gigantamax forms"),
		),
		ToggleOther: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "other forms"),
		),
		CycleCapture: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "all/caught/uncaught"),
		),
		PrevGeneration: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous generation"),
		),
		NextGeneration: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next generation"),
		),
		ClearGeneration: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all generations"),
		),

		ToggleStyle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sprite/artwork"),
		),
		ToggleShiny: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "shiny"),
		),

		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.CycleCapture, k.NextGeneration, k.Select, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Select, k.Back},
		{k.Search, k.ToggleMega, k.ToggleGmax, k.ToggleOther, k.CycleCapture},
		{k.PrevGeneration, k.NextGeneration, k.ClearGeneration, k.ToggleStyle, k.ToggleShiny},
		{k.Refresh, k.Help, k.Quit, k.ForceQuit},
	}
}
