package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/asta/internal/config"
)

// keyMap holds the bindings of normal mode. Arrow keys are always bound
// alongside the configured navigation keys.
type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Assign key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", km.PrevEntity),
			key.WithHelp("↑/"+displayKey(km.PrevEntity), "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", km.NextEntity),
			key.WithHelp("↓/"+displayKey(km.NextEntity), "next"),
		),
		Assign: key.NewBinding(
			key.WithKeys(km.Assign),
			key.WithHelp(displayKey(km.Assign), "assign"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(displayKey(km.ShowHelp), "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit),
			key.WithHelp(displayKey(km.Quit), "save & quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Assign, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Assign},
		{k.Help, k.Quit},
	}
}

func displayKey(k string) string {
	switch k {
	case "enter":
		return "⏎"
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return k
	}
}
