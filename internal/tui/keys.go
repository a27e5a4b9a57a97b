package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Today     key.Binding
	NextHabit key.Binding
	PrevHabit key.Binding
	MarkToday key.Binding
	Dismiss   key.Binding
	Add       key.Binding
	Rename    key.Binding
	Color     key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	Motivate  key.Binding
	Help      key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Today},
		{k.NextHabit, k.PrevHabit, k.MarkToday, k.Dismiss},
		{k.Add, k.Rename, k.Color, k.Delete, k.Refresh, k.Motivate},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev day"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next day"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev week"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next week"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "t"),
			key.WithHelp("enter", "toggle day"),
		),
		Today: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "jump to today"),
		),
		NextHabit: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next habit"),
		),
		PrevHabit: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev habit"),
		),
		MarkToday: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "mark today done"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss today prompt"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add habit"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename habit"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "change color"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete habit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Motivate: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "motivation"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
