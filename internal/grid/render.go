package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const (
	cellDone = "■"
	cellTodo = "·"
	cellPad  = " "
	monthGap = "  "
)

// RenderConfig controls how a projected Year is drawn.
type RenderConfig struct {
	// Color is the hex color used for done cells.
	Color string
	// CursorDate, when non-empty, highlights the cell holding that date.
	CursorDate string
}

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	monthStyle  = lipgloss.NewStyle().Bold(true)
	todoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

// Render draws the grid as text: a month-label line, then seven weekday rows.
// Each cell is two screen columns wide; month blocks are separated by a fixed
// gap. Pad cells render blank.
func Render(y Year, cfg RenderConfig) string {
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Color))

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", 4))
	for i, m := range y.Months {
		if i > 0 {
			header.WriteString(monthGap)
		}
		width := m.WeekCols * 2
		label := m.Month.String()[:3]
		header.WriteString(monthStyle.Render(label))
		header.WriteString(strings.Repeat(" ", width-len(label)))
	}

	rows := make([]string, 7)
	for row := 0; row < 7; row++ {
		var b strings.Builder
		b.WriteString(labelStyle.Render(weekdayLabels[row]))
		b.WriteString(" ")
		for i, m := range y.Months {
			if i > 0 {
				b.WriteString(monthGap)
			}
			for col := 0; col < m.WeekCols; col++ {
				c := m.Cell(col, row)
				b.WriteString(renderCell(c, cfg, doneStyle))
				b.WriteString(" ")
			}
		}
		rows[row] = strings.TrimRight(b.String(), " ")
	}

	return header.String() + "\n" + strings.Join(rows, "\n")
}

func renderCell(c Cell, cfg RenderConfig, doneStyle lipgloss.Style) string {
	if c.Pad() {
		return cellPad
	}
	glyph := cellTodo
	style := todoStyle
	if c.Done {
		glyph = cellDone
		style = doneStyle
	}
	if cfg.CursorDate != "" && c.Date == cfg.CursorDate {
		return cursorStyle.Render(glyph)
	}
	return style.Render(glyph)
}
