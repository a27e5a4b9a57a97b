package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitgrid/internal/client"
	"habitgrid/internal/grid"
	"habitgrid/internal/habit"
	"habitgrid/internal/tui/components/quickcheck"
)

type SessionState int

const (
	StateGrid SessionState = iota
	StateQuick
	StateAddHabit
	StateRenameHabit
	StateRecolorHabit
	StateConfirmDelete
)

type HabitFormModel struct {
	Name string
}

type RenameFormModel struct {
	Name string
}

type ColorFormModel struct {
	Color string
}

type Model struct {
	client        *client.Client
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	quick         quickcheck.Model

	habits   habit.Collection
	names    []string
	selected int

	year      int
	layout    grid.Year
	cursorDay int

	// fetchSeq numbers every fetch; responses carrying an older sequence
	// are dropped so a slow reply cannot overwrite a newer snapshot.
	fetchSeq int
	loading  bool
	loadErr  string
	notice   string

	form          *huh.Form
	habitForm     *HabitFormModel
	renameForm    *RenameFormModel
	colorForm     *ColorFormModel
	habitToDelete string

	dismissed *Dismissals

	width    int
	height   int
	quitting bool
}

func NewModel(c *client.Client) Model {
	now := time.Now()
	year := now.Year()

	m := Model{
		client:    c,
		state:     StateGrid,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		quick:     quickcheck.New(nil, 0, 0),
		habits:    habit.Collection{},
		year:      year,
		layout:    grid.New(year),
		cursorDay: now.YearDay(),
		dismissed: NewDismissals(),
		fetchSeq:  1,
		loading:   true,
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchHabits(m.client, m.fetchSeq),
		fetchMotivation(m.client),
	)
}

// reload advances the fetch sequence and issues a new fetch. Any response
// still in flight from an earlier sequence will be dropped on arrival.
func (m *Model) reload() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	return fetchHabits(m.client, m.fetchSeq)
}

func currentYearDay() int { return time.Now().YearDay() }

func (m Model) selectedHabitName() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.selected]
}

func (m Model) cursorDate() string {
	return grid.DateOfYearDay(m.year, m.cursorDay)
}

// setHabits installs a fresh snapshot and reclamps the selection so a
// deleted or renamed habit cannot leave the cursor dangling.
func (m *Model) setHabits(col habit.Collection) {
	prev := m.selectedHabitName()
	m.habits = col
	m.names = col.Names()

	m.selected = 0
	for i, name := range m.names {
		if name == prev {
			m.selected = i
			break
		}
	}

	m.quick.SetEntries(m.quickEntries())
}

// quickEntries builds the quick check rows: every habit with its done-today
// state. Dismissals suppress the grid's today prompt only; a dismissed habit
// stays quick-markable here.
func (m Model) quickEntries() []quickcheck.Entry {
	today := habit.Today()
	var entries []quickcheck.Entry
	for _, name := range m.names {
		entries = append(entries, quickcheck.Entry{
			Name: name,
			Done: m.habits[name].DoneOn(today),
		})
	}
	return entries
}

func (m *Model) setYear(year int) {
	m.year = year
	m.layout = grid.New(year)
	if max := grid.DaysInYear(year); m.cursorDay > max {
		m.cursorDay = max
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursorDay += delta
	if m.cursorDay < 1 {
		m.cursorDay = 1
	}
	if max := grid.DaysInYear(m.year); m.cursorDay > max {
		m.cursorDay = max
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateGrid:
		keys = append(keys, m.keys.Toggle, m.keys.NextHabit, m.keys.Add)
	case StateQuick:
		keys = append(keys, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}
