// Package store persists the server-held habit collection. Habits are keyed
// by name on the wire but carry uuid row IDs internally so renames preserve
// history through the foreign key.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"habitgrid/internal/habit"
)

type HabitStore struct {
	db *sql.DB
}

func NewHabitStore(db *sql.DB) *HabitStore {
	return &HabitStore{db: db}
}

// All returns the full collection, habit dates included. Toggled-off days
// remain present with a false value, matching the wire format.
func (s *HabitStore) All() (habit.Collection, error) {
	rows, err := s.db.Query(`
		SELECT h.name, h.color, d.date, d.checked
		FROM habits h
		LEFT JOIN habit_dates d ON d.habit_id = h.id
		ORDER BY h.name`)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	col := habit.Collection{}
	for rows.Next() {
		var name, color string
		var day sql.NullString
		var checked sql.NullInt64
		if err := rows.Scan(&name, &color, &day, &checked); err != nil {
			return nil, err
		}
		h, ok := col[name]
		if !ok {
			h = habit.Habit{Color: color, Dates: map[string]bool{}}
		}
		if day.Valid {
			h.Dates[day.String] = checked.Int64 != 0
		}
		col[name] = h
	}
	return col, rows.Err()
}

// ToggleDate flips completion of the named habit for a day: the entry is
// created checked if absent, inverted otherwise. The habit itself is created
// on first toggle if it does not exist yet.
func (s *HabitStore) ToggleDate(name, day string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var habitID string
	err = tx.QueryRow("SELECT id FROM habits WHERE name = ?", name).Scan(&habitID)
	if err == sql.ErrNoRows {
		habitID = uuid.New().String()
		if _, err := tx.Exec("INSERT INTO habits (id, name) VALUES (?, ?)", habitID, name); err != nil {
			return fmt.Errorf("create habit %q: %w", name, err)
		}
	} else if err != nil {
		return err
	}

	var checked int
	err = tx.QueryRow("SELECT checked FROM habit_dates WHERE habit_id = ? AND date = ?", habitID, day).Scan(&checked)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec("INSERT INTO habit_dates (habit_id, date, checked) VALUES (?, ?, 1)", habitID, day)
	case err == nil:
		inverted := 1
		if checked != 0 {
			inverted = 0
		}
		_, err = tx.Exec("UPDATE habit_dates SET checked = ? WHERE habit_id = ? AND date = ?", inverted, habitID, day)
	}
	if err != nil {
		return fmt.Errorf("toggle %q on %s: %w", name, day, err)
	}

	return tx.Commit()
}

// Create inserts a new habit with the default color and no history. A
// duplicate name is a silent no-op.
func (s *HabitStore) Create(name string) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO habits (id, name) VALUES (?, ?)", uuid.New().String(), name)
	if err != nil {
		return fmt.Errorf("create habit %q: %w", name, err)
	}
	return nil
}

// Rename renames a habit in place; the row ID is unchanged so all dates and
// the color carry over. Renaming onto an existing name fails with the
// database's uniqueness error.
func (s *HabitStore) Rename(oldName, newName string) error {
	if _, err := s.db.Exec("UPDATE habits SET name = ? WHERE name = ?", newName, oldName); err != nil {
		return fmt.Errorf("rename habit %q: %w", oldName, err)
	}
	return nil
}

// Recolor sets the habit's display color without touching its history.
func (s *HabitStore) Recolor(name, color string) error {
	if _, err := s.db.Exec("UPDATE habits SET color = ? WHERE name = ?", color, name); err != nil {
		return fmt.Errorf("recolor habit %q: %w", name, err)
	}
	return nil
}

// Delete removes the habit; its dates cascade away with it.
func (s *HabitStore) Delete(name string) error {
	if _, err := s.db.Exec("DELETE FROM habits WHERE name = ?", name); err != nil {
		return fmt.Errorf("delete habit %q: %w", name, err)
	}
	return nil
}
