package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"habitgrid/internal/grid"
	"habitgrid/internal/habit"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateGrid:
		content = m.viewGrid()
	case StateQuick:
		content = docStyle.Render(m.quick.View())
	case StateAddHabit, StateRenameHabit, StateRecolorHabit:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Grid", "Quick Check"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewGrid() string {
	if m.loadErr != "" && len(m.habits) == 0 {
		return docStyle.Render(errorStyle.Render(m.loadErr) + "\n\nPress 'R' to retry.")
	}
	if m.loading && len(m.habits) == 0 {
		return docStyle.Render(subtleStyle.Render("Loading habits..."))
	}

	name := m.selectedHabitName()
	if name == "" {
		return docStyle.Render("No habits yet.\nPress 'a' to add one.")
	}

	h := m.habits[name]
	title := fmt.Sprintf("%s  %s",
		titleStyle.Render(name),
		subtleStyle.Render(fmt.Sprintf("%d  ·  %d done  ·  %d/%d",
			m.year, h.DoneCount(), m.selected+1, len(m.names))),
	)

	g := grid.Render(m.layout.Project(h.Dates), grid.RenderConfig{
		Color:      h.DisplayColor(),
		CursorDate: m.cursorDate(),
	})

	parts := []string{title, "", g}
	if !h.DoneOn(habit.Today()) && !m.dismissed.Dismissed(name) {
		parts = append(parts, "",
			subtleStyle.Render("Task completed today?  [T] mark done   [x] dismiss"))
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewStatus() string {
	switch {
	case m.loadErr != "" && len(m.habits) > 0:
		return " " + errorStyle.Render(m.loadErr+" Showing last known data.")
	case m.notice != "":
		return " " + noticeStyle.Render(m.notice)
	case m.loading:
		return " " + subtleStyle.Render("Refreshing...")
	}
	return ""
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and all of its history?", m.habitToDelete)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
