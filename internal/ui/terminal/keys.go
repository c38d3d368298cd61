package terminal

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings of the quiz screen.
type keyMap struct {
	PrevTopic key.Binding
	NextTopic key.Binding
	Up        key.Binding
	Down      key.Binding
	Pick      key.Binding
	Toggle    key.Binding
	Confirm   key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevTopic: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "пред. тема"),
		),
		NextTopic: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "след. тема"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "вниз"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "a", "b", "c", "d"),
			key.WithHelp("1-4", "ответ"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "выбрать"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "проверить/далее"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "заново"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "выход"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTopic, k.NextTopic, k.Pick, k.Confirm, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTopic, k.NextTopic},
		{k.Up, k.Down, k.Pick, k.Toggle},
		{k.Confirm, k.Restart, k.Quit},
	}
}

// optionForKey maps a pick key to an option index.
func optionForKey(s string) (int, bool) {
	switch s {
	case "1", "a":
		return 0, true
	case "2", "b":
		return 1, true
	case "3", "c":
		return 2, true
	case "4", "d":
		return 3, true
	default:
		return 0, false
	}
}
