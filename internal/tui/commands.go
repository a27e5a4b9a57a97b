package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habitgrid/internal/client"
	"habitgrid/internal/habit"
)

const requestTimeout = 10 * time.Second

type habitsLoadedMsg struct {
	seq    int
	habits habit.Collection
	err    error
}

type mutationDoneMsg struct {
	err error
}

type motivationMsg struct {
	text string
	err  error
}

func fetchHabits(c *client.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		col, err := c.FetchAll(ctx)
		return habitsLoadedMsg{seq: seq, habits: col, err: err}
	}
}

func toggleHabit(c *client.Client, name, day string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{err: c.Toggle(ctx, name, day)}
	}
}

func createHabit(c *client.Client, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{err: c.Create(ctx, name)}
	}
}

func renameHabit(c *client.Client, oldName, newName string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{err: c.Rename(ctx, oldName, newName)}
	}
}

func recolorHabit(c *client.Client, name, color string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{err: c.Recolor(ctx, name, color)}
	}
}

func deleteHabit(c *client.Client, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return mutationDoneMsg{err: c.Delete(ctx, name)}
	}
}

func fetchMotivation(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		text, err := c.Motivation(ctx)
		return motivationMsg{text: text, err: err}
	}
}
