package tui

import "github.com/charmbracelet/bubbles/key"

// EditorKeyMap defines the key bindings for the editor screen.
// Printable keys always go to the command line, so every binding here
// uses a control or navigation key.
type EditorKeyMap struct {
	Run        key.Binding
	ClearInput key.Binding
	Prev       key.Binding
	Next       key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Prev, k.ClearInput, k.ToggleHelp, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.ClearInput},
		{k.Prev, k.Next},
		{k.ToggleHelp, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		ClearInput: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear line"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up/down", "recall"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "newer"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "commands"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSession key.Binding
	PrevSession key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSession, k.PrevSession, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSession, k.PrevSession},
		{k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSession: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "older session"),
		),
		PrevSession: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "newer session"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
