package habit

import (
	"fmt"
	"sort"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is the completion color assigned to new habits.
const DefaultColor = "#39d353"

// DayFormat is the calendar-day key format used on the wire and in storage.
// Day strings are always produced from local time; see Today.
const DayFormat = "2006-01-02"

// Habit is the wire representation of a single tracked habit. Habits are
// identified by name (the key in Collection); a date key present with a true
// value means the habit was done that day.
type Habit struct {
	Color string          `json:"color"`
	Dates map[string]bool `json:"dates"`
}

// Collection maps habit name to habit. The server owns the collection; a
// client-side Collection is a snapshot, discarded after each render pass.
type Collection map[string]Habit

// DoneOn reports whether the habit was completed on the given day.
func (h Habit) DoneOn(day string) bool {
	return h.Dates[day]
}

// DisplayColor returns the habit's color, falling back to DefaultColor.
func (h Habit) DisplayColor() string {
	if h.Color == "" {
		return DefaultColor
	}
	return h.Color
}

// DoneCount returns the number of completed days recorded for the habit.
func (h Habit) DoneCount() int {
	n := 0
	for _, done := range h.Dates {
		if done {
			n++
		}
	}
	return n
}

// Names returns the habit names in sorted order for deterministic rendering.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Today returns the current day string using local calendar components.
func Today() string {
	return time.Now().Format(DayFormat)
}

// Day returns the day string for a local calendar date. Out-of-range values
// normalize the way time.Date does.
func Day(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(DayFormat)
}

// ParseDay validates a YYYY-MM-DD day string and returns its local date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ValidColor reports whether s parses as a #rrggbb hex color.
func ValidColor(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}
