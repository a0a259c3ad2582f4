package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the keypad bindings. Digits, ".", brackets and operators are
// not listed here; any key that calc.ParseToken accepts is typed into the
// buffer.
type keyMap struct {
	Evaluate  key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Use       key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("=/enter", "evaluate"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C", "delete"),
			key.WithHelp("c", "clear"),
		),
		Use: key.NewBinding(
			key.WithKeys("u", "ctrl+u"),
			key.WithHelp("u", "use result"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Use, k.Copy, k.Clear, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Evaluate, k.Backspace, k.Clear},
		{k.Use, k.Copy},
		{k.Help, k.Quit},
	}
}
