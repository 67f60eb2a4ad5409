package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rgehrsitz/eisim/internal/i18n"
)

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Language key.Binding
	Quit     key.Binding
}

func newKeyMap(tr i18n.Translator) keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↑/↓", tr.Translate("ui.help.navigate", nil)),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←/→", tr.Translate("ui.help.cycle", nil)),
		),
		Language: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", tr.Translate("ui.help.language", nil)),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", tr.Translate("ui.help.quit", nil)),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Right, k.Language, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
