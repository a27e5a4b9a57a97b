package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitgrid/internal/habit"
	"habitgrid/internal/tui/components/quickcheck"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.quick.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case habitsLoadedMsg:
		if msg.seq != m.fetchSeq {
			// A newer fetch is already in flight or landed; this
			// response is stale.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = "Could not reach the habit server."
			return m, nil
		}
		m.loadErr = ""
		m.setHabits(msg.habits)
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.notice = "Change failed: " + msg.err.Error()
		}
		return m, m.reload()

	case motivationMsg:
		if msg.err != nil {
			m.notice = "Motivation unavailable."
		} else {
			m.notice = msg.text
		}
		return m, nil

	case quickcheck.ToggleHabitMsg:
		return m, toggleHabit(m.client, msg.Name, habit.Today())

	case quickcheck.DismissHabitMsg:
		m.dismissed.Dismiss(msg.Name)
		return m, nil

	case quickcheck.AddHabitMsg:
		return m.openAddForm(), nil
	}

	switch m.state {
	case StateGrid:
		return m.updateGrid(msg)
	case StateQuick:
		return m.updateQuick(msg)
	case StateAddHabit, StateRenameHabit, StateRecolorHabit:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m Model) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Tab), key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = StateQuick
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Left):
		m.moveCursor(-7)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveCursor(7)
	case key.Matches(keyMsg, m.keys.Today):
		m.cursorDay = currentYearDay()
	case key.Matches(keyMsg, m.keys.MarkToday):
		if name := m.selectedHabitName(); name != "" && !m.habits[name].DoneOn(habit.Today()) {
			return m, toggleHabit(m.client, name, habit.Today())
		}
	case key.Matches(keyMsg, m.keys.Dismiss):
		if name := m.selectedHabitName(); name != "" {
			m.dismissed.Dismiss(name)
		}
	case key.Matches(keyMsg, m.keys.NextHabit):
		if len(m.names) > 0 {
			m.selected = (m.selected + 1) % len(m.names)
		}
	case key.Matches(keyMsg, m.keys.PrevHabit):
		if len(m.names) > 0 {
			m.selected = (m.selected - 1 + len(m.names)) % len(m.names)
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if name := m.selectedHabitName(); name != "" {
			return m, toggleHabit(m.client, name, m.cursorDate())
		}
	case key.Matches(keyMsg, m.keys.Add):
		return m.openAddForm(), nil
	case key.Matches(keyMsg, m.keys.Rename):
		if name := m.selectedHabitName(); name != "" {
			m.previousState = m.state
			m.renameForm = &RenameFormModel{Name: name}
			m.form = newRenameForm(m.renameForm)
			m.state = StateRenameHabit
			return m, m.form.Init()
		}
	case key.Matches(keyMsg, m.keys.Color):
		if name := m.selectedHabitName(); name != "" {
			m.previousState = m.state
			m.colorForm = &ColorFormModel{Color: m.habits[name].DisplayColor()}
			m.form = newColorForm(m.colorForm)
			m.state = StateRecolorHabit
			return m, m.form.Init()
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if name := m.selectedHabitName(); name != "" {
			m.previousState = m.state
			m.habitToDelete = name
			m.state = StateConfirmDelete
		}
	case key.Matches(keyMsg, m.keys.Refresh):
		return m, m.reload()
	case key.Matches(keyMsg, m.keys.Motivate):
		return m, fetchMotivation(m.client)
	}
	return m, nil
}

func (m Model) updateQuick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Tab), key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = StateGrid
			return m, nil
		case key.Matches(keyMsg, m.keys.Refresh):
			return m, m.reload()
		}
	}

	var cmd tea.Cmd
	m.quick, cmd = m.quick.Update(msg)
	return m, cmd
}

func (m Model) openAddForm() Model {
	m.previousState = m.state
	m.habitForm = &HabitFormModel{}
	m.form = newAddHabitForm(m.habitForm)
	m.state = StateAddHabit
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		state := m.state
		m.state = m.previousState
		switch state {
		case StateAddHabit:
			cmds = append(cmds, createHabit(m.client, strings.TrimSpace(m.habitForm.Name)))
		case StateRenameHabit:
			oldName := m.selectedHabitName()
			newName := strings.TrimSpace(m.renameForm.Name)
			if oldName != "" && newName != oldName {
				cmds = append(cmds, renameHabit(m.client, oldName, newName))
			}
		case StateRecolorHabit:
			if name := m.selectedHabitName(); name != "" {
				cmds = append(cmds, recolorHabit(m.client, name, m.colorForm.Color))
			}
		}
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		name := m.habitToDelete
		m.habitToDelete = ""
		m.state = m.previousState
		return m, deleteHabit(m.client, name)
	case "n", "N", "esc", "q":
		m.habitToDelete = ""
		m.state = m.previousState
	}
	return m, nil
}
