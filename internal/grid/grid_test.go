package grid

import (
	"strings"
	"testing"
	"time"

	"habitgrid/internal/habit"
)

func TestWeekColumnsFormula(t *testing.T) {
	for _, year := range []int{1999, 2000, 2023, 2024, 2025, 2026, 2100} {
		y := New(year)
		for _, m := range y.Months {
			want := (m.FirstWeekday + m.Days + 6) / 7
			if m.WeekCols != want {
				t.Errorf("%d %s: WeekCols = %d, want %d", year, m.Month, m.WeekCols, want)
			}
			if len(m.Cells) != 7*m.WeekCols {
				t.Errorf("%d %s: %d cells, want %d", year, m.Month, len(m.Cells), 7*m.WeekCols)
			}
		}
	}
}

func TestEveryDayMapsToExactlyOneCell(t *testing.T) {
	y := New(2025)
	for _, m := range y.Months {
		seen := make(map[int]int)
		for _, c := range m.Cells {
			if c.Pad() {
				continue
			}
			seen[c.Day]++
			// A non-pad cell's position must agree with the layout formula.
			if got := c.Col*7 + c.Row - m.FirstWeekday + 1; got != c.Day {
				t.Errorf("%s day %d: position maps to %d", m.Month, c.Day, got)
			}
		}
		if len(seen) != m.Days {
			t.Fatalf("%s: %d distinct days mapped, want %d", m.Month, len(seen), m.Days)
		}
		for day, n := range seen {
			if n != 1 {
				t.Errorf("%s day %d mapped to %d cells", m.Month, day, n)
			}
		}
	}
}

func TestPadCellsHaveNoDate(t *testing.T) {
	y := New(2025)
	for _, m := range y.Months {
		for _, c := range m.Cells {
			if c.Pad() && c.Date != "" {
				t.Errorf("%s pad cell at (%d,%d) carries date %q", m.Month, c.Col, c.Row, c.Date)
			}
			if !c.Pad() && c.Date == "" {
				t.Errorf("%s day %d has no date", m.Month, c.Day)
			}
		}
	}
}

func TestLeapYearFebruary(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{2023, 28},
		{2024, 29}, // divisible by 4
		{2100, 28}, // divisible by 100, not 400
		{2000, 29}, // divisible by 400
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, time.February); got != tc.want {
			t.Errorf("DaysInMonth(%d, February) = %d, want %d", tc.year, got, tc.want)
		}
	}
}

func TestMondayFirstRowMapping(t *testing.T) {
	// 2025-09-01 is a Monday: September's first cell must be day 1 at row 0.
	y := New(2025)
	sep := y.Months[8]
	if sep.FirstWeekday != 0 {
		t.Fatalf("September 2025 first weekday = %d, want 0 (Monday)", sep.FirstWeekday)
	}
	c := sep.Cell(0, 0)
	if c.Day != 1 || c.Date != "2025-09-01" {
		t.Errorf("cell (0,0) = day %d date %s, want day 1 date 2025-09-01", c.Day, c.Date)
	}
}

func TestProjectPaintsCompletion(t *testing.T) {
	y := New(2025)
	dates := map[string]bool{
		"2025-03-10": true,
		"2025-03-11": false, // toggled off: present but falsy
	}
	p := y.Project(dates)

	var done, total int
	for _, m := range p.Months {
		for _, c := range m.Cells {
			if c.Done {
				done++
				if c.Date != "2025-03-10" {
					t.Errorf("unexpected done cell %s", c.Date)
				}
			}
			if !c.Pad() {
				total++
			}
		}
	}
	if done != 1 {
		t.Errorf("done cells = %d, want 1", done)
	}
	if total != DaysInYear(2025) {
		t.Errorf("non-pad cells = %d, want %d", total, DaysInYear(2025))
	}

	// Project must not mutate the source layout.
	for _, c := range y.Months[2].Cells {
		if c.Done {
			t.Fatal("Project mutated its receiver")
		}
	}
}

func TestDateOfYearDayClamps(t *testing.T) {
	if got := DateOfYearDay(2025, 0); got != "2025-01-01" {
		t.Errorf("day 0 = %s, want 2025-01-01", got)
	}
	if got := DateOfYearDay(2025, 400); got != "2025-12-31" {
		t.Errorf("day 400 = %s, want 2025-12-31", got)
	}
	if got := DateOfYearDay(2024, 60); got != "2024-02-29" {
		t.Errorf("day 60 of 2024 = %s, want 2024-02-29", got)
	}
}

func TestRenderShowsMonthLabelsAndWeekdays(t *testing.T) {
	y := New(2025).Project(map[string]bool{habit.Day(2025, time.June, 15): true})
	out := Render(y, RenderConfig{Color: habit.DefaultColor})

	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("rendered %d lines, want 8", len(lines))
	}
	for _, label := range []string{"Jan", "Jun", "Dec"} {
		if !strings.Contains(lines[0], label) {
			t.Errorf("header missing month label %q", label)
		}
	}
	for i, label := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		if !strings.Contains(lines[i+1], label) {
			t.Errorf("row %d missing weekday label %q", i, label)
		}
	}
	if !strings.Contains(out, cellDone) {
		t.Error("rendered grid has no done cell")
	}
}
