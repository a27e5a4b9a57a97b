// Package grid lays out a year of calendar days as a GitHub-style completion
// grid: one block per month, seven weekday rows (Monday first), and as many
// week columns per month as the month needs. Layout depends only on the year;
// completion is painted on afterwards.
package grid

import (
	"time"

	"habitgrid/internal/habit"
)

// Cell is one slot in a month block. Pad cells (Day == 0) fill the leading
// and trailing partial weeks and carry no date.
type Cell struct {
	Day  int    // day of month, 1-based; 0 for padding
	Date string // YYYY-MM-DD, empty for padding
	Row  int    // weekday row, Monday=0 .. Sunday=6
	Col  int    // week column within the month
	Done bool
}

// Pad reports whether the cell is an empty filler with no date.
func (c Cell) Pad() bool { return c.Day == 0 }

// Month is the laid-out block for a single month.
type Month struct {
	Month        time.Month
	Days         int
	FirstWeekday int // weekday of day 1, Monday=0
	WeekCols     int
	// Cells holds 7*WeekCols entries in column-major order: index col*7+row.
	Cells []Cell
}

// Cell returns the cell at the given column and weekday row.
func (m Month) Cell(col, row int) Cell {
	return m.Cells[col*7+row]
}

// Year is the full laid-out grid for one calendar year.
type Year struct {
	Year   int
	Months [12]Month
}

// DaysInMonth returns the day count of a month, leap years included.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// New lays out the grid for a year. Every day 1..DaysInMonth maps to exactly
// one non-pad cell; every other slot is a pad.
func New(year int) Year {
	y := Year{Year: year}
	for i := 0; i < 12; i++ {
		month := time.Month(i + 1)
		days := DaysInMonth(year, month)
		first := (int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()) + 6) % 7
		weekCols := (first + days + 6) / 7

		cells := make([]Cell, 7*weekCols)
		for col := 0; col < weekCols; col++ {
			for row := 0; row < 7; row++ {
				day := col*7 + row - first + 1
				cell := Cell{Row: row, Col: col}
				if day >= 1 && day <= days {
					cell.Day = day
					cell.Date = habit.Day(year, month, day)
				}
				cells[col*7+row] = cell
			}
		}

		y.Months[i] = Month{
			Month:        month,
			Days:         days,
			FirstWeekday: first,
			WeekCols:     weekCols,
			Cells:        cells,
		}
	}
	return y
}

// Project returns a copy of the layout with completion flags painted from the
// habit's date map. The input layout is not modified.
func (y Year) Project(dates map[string]bool) Year {
	out := y
	for i, m := range y.Months {
		cells := make([]Cell, len(m.Cells))
		copy(cells, m.Cells)
		for j, c := range cells {
			if !c.Pad() {
				cells[j].Done = dates[c.Date]
			}
		}
		out.Months[i].Cells = cells
	}
	return out
}

// DateOfYearDay maps an ordinal day of the year (1-based) to its day string,
// clamping to the year's bounds. Used for grid cursor navigation.
func DateOfYearDay(year, n int) string {
	total := DaysInYear(year)
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return time.Date(year, time.January, n, 0, 0, 0, 0, time.Local).Format(habit.DayFormat)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if DaysInMonth(year, time.February) == 29 {
		return 366
	}
	return 365
}
