package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Theme key.Binding
	Pause key.Binding
	Stats key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Pause, k.Stats},
		{k.Help, k.Quit},
	}
}

func defaultKeys() keyMap {
	return keyMap{
		Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
		Stats: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "link graph")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}
