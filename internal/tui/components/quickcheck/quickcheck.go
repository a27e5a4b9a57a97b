package quickcheck

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type ToggleHabitMsg struct {
	Name string
}

type DismissHabitMsg struct {
	Name string
}

type AddHabitMsg struct{}

// Entry is one habit row in the quick check list.
type Entry struct {
	Name string
	Done bool
}

type Item struct {
	Entry Entry
}

func (i Item) Title() string {
	if i.Entry.Done {
		return "✓ " + i.Entry.Name
	}
	return "· " + i.Entry.Name
}

func (i Item) Description() string {
	if i.Entry.Done {
		return "done today"
	}
	return "not checked today"
}

func (i Item) FilterValue() string { return i.Entry.Name }

type KeyMap struct {
	Toggle  key.Binding
	Dismiss key.Binding
	Add     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle today"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss prompt"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add habit"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []Entry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Quick Check"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally by the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Dismiss, keys.Add}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Dismiss, keys.Add}
	}

	return Model{list: l, keys: keys}
}

func toItems(entries []Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	return items
}

func (m *Model) SetEntries(entries []Entry) {
	m.list.SetItems(toItems(entries))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{Name: i.Entry.Name} }
			}
		case key.Matches(msg, m.keys.Dismiss):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DismissHabitMsg{Name: i.Entry.Name} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing to check off.\n  Press 'a' to add a habit."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
