package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"habitgrid/internal/database"
	"habitgrid/internal/habit"
)

func newTestStore(t *testing.T) *HabitStore {
	t.Helper()
	s, _ := newTestStoreDB(t)
	return s
}

func newTestStoreDB(t *testing.T) (*HabitStore, *sql.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "habits.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewHabitStore(db), db
}

// A habit with no history and a habit with mixed checked values must both
// come back intact from one snapshot read.
func TestAllGroupsDatesByHabit(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("Read"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.ToggleDate("Run", "2025-03-01"); err != nil {
		t.Fatalf("ToggleDate: %v", err)
	}
	if err := s.ToggleDate("Run", "2025-03-02"); err != nil {
		t.Fatalf("ToggleDate: %v", err)
	}
	// Toggle off: the row stays with a false value.
	if err := s.ToggleDate("Run", "2025-03-02"); err != nil {
		t.Fatalf("ToggleDate: %v", err)
	}

	col, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(col) != 2 {
		t.Fatalf("collection has %d habits, want 2", len(col))
	}
	if len(col["Read"].Dates) != 0 {
		t.Errorf("Read has %d dates, want 0", len(col["Read"].Dates))
	}
	run := col["Run"]
	if !run.DoneOn("2025-03-01") {
		t.Error("2025-03-01 should be done")
	}
	if done, present := run.Dates["2025-03-02"]; !present || done {
		t.Errorf("2025-03-02 present=%v done=%v, want present and false", present, done)
	}
}

// Orphaned history rows are invisible in the wire format, so this checks the
// table directly. Cascades depend on foreign_keys being set on whichever
// pooled connection runs the delete.
func TestDeleteLeavesNoOrphanedDateRows(t *testing.T) {
	s, db := newTestStoreDB(t)
	db.SetMaxOpenConns(4)

	if err := s.Create("Read"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, day := range []string{"2025-01-01", "2025-01-02", "2025-01-03"} {
		if err := s.ToggleDate("Read", day); err != nil {
			t.Fatalf("ToggleDate: %v", err)
		}
	}

	if err := s.Delete("Read"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM habit_dates").Scan(&n); err != nil {
		t.Fatalf("count habit_dates: %v", err)
	}
	if n != 0 {
		t.Errorf("%d habit_dates rows survived the delete", n)
	}
}

func TestCreateUsesDefaults(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("Read"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	col, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	h, ok := col["Read"]
	if !ok {
		t.Fatal("habit Read not found")
	}
	if h.Color != habit.DefaultColor {
		t.Errorf("color = %q, want %q", h.Color, habit.DefaultColor)
	}
	if len(h.Dates) != 0 {
		t.Errorf("new habit has %d dates, want 0", len(h.Dates))
	}
}

func TestCreateDuplicateIsSilentNoOp(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("Read"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.ToggleDate("Read", "2025-05-01"); err != nil {
		t.Fatalf("ToggleDate: %v", err)
	}
	if err := s.Create("Read"); err != nil {
		t.Fatalf("duplicate Create should not error: %v", err)
	}

	col, _ := s.All()
	if len(col) != 1 {
		t.Fatalf("collection has %d habits, want 1", len(col))
	}
	if !col["Read"].DoneOn("2025-05-01") {
		t.Error("duplicate create wiped history")
	}
}

func TestTogglePairRestoresOriginalState(t *testing.T) {
	s := newTestStore(t)
	day := "2025-03-15"

	if err := s.ToggleDate("Read", day); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	col, _ := s.All()
	if !col["Read"].DoneOn(day) {
		t.Fatal("day should be done after first toggle")
	}

	if err := s.ToggleDate("Read", day); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	col, _ = s.All()
	if col["Read"].DoneOn(day) {
		t.Fatal("day should not be done after second toggle")
	}

	if err := s.ToggleDate("Read", day); err != nil {
		t.Fatalf("third toggle: %v", err)
	}
	col, _ = s.All()
	if !col["Read"].DoneOn(day) {
		t.Fatal("third toggle should re-mark the day")
	}
}

func TestToggleCreatesHabitIfAbsent(t *testing.T) {
	s := newTestStore(t)

	if err := s.ToggleDate("Meditate", "2025-01-01"); err != nil {
		t.Fatalf("ToggleDate: %v", err)
	}
	col, _ := s.All()
	if _, ok := col["Meditate"]; !ok {
		t.Fatal("toggle did not create the habit")
	}
}

func TestRenamePreservesHistoryAndColor(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("Run"); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleDate("Run", "2025-02-02"); err != nil {
		t.Fatal(err)
	}
	if err := s.Recolor("Run", "#ff0000"); err != nil {
		t.Fatal(err)
	}
	if err := s.Rename("Run", "Jog"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	col, _ := s.All()
	if _, ok := col["Run"]; ok {
		t.Error("old name still present after rename")
	}
	h, ok := col["Jog"]
	if !ok {
		t.Fatal("renamed habit not found")
	}
	if !h.DoneOn("2025-02-02") {
		t.Error("history lost in rename")
	}
	if h.Color != "#ff0000" {
		t.Errorf("color = %q, want #ff0000", h.Color)
	}
}

func TestRenameOntoExistingNameFails(t *testing.T) {
	s := newTestStore(t)

	s.Create("Read")
	s.Create("Run")

	if err := s.Rename("Run", "Read"); err == nil {
		t.Fatal("rename onto an existing name should fail")
	}
}

func TestRecolorLeavesDatesUntouched(t *testing.T) {
	s := newTestStore(t)

	s.Create("Read")
	s.ToggleDate("Read", "2025-04-01")
	s.ToggleDate("Read", "2025-04-02")
	s.ToggleDate("Read", "2025-04-02") // off again

	if err := s.Recolor("Read", "#ff0000"); err != nil {
		t.Fatalf("Recolor: %v", err)
	}

	col, _ := s.All()
	h := col["Read"]
	if h.Color != "#ff0000" {
		t.Errorf("color = %q", h.Color)
	}
	if !h.DoneOn("2025-04-01") || h.DoneOn("2025-04-02") {
		t.Error("recolor altered completion history")
	}
}

func TestDeleteRemovesHabitAndHistory(t *testing.T) {
	s := newTestStore(t)

	s.Create("Read")
	s.ToggleDate("Read", "2025-06-01")

	if err := s.Delete("Read"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	col, _ := s.All()
	if len(col) != 0 {
		t.Fatalf("collection has %d habits after delete, want 0", len(col))
	}

	// Re-creating the habit must not resurrect cascaded history.
	s.Create("Read")
	col, _ = s.All()
	if len(col["Read"].Dates) != 0 {
		t.Error("deleted history resurfaced on recreate")
	}
}

func TestEndToEndScenario(t *testing.T) {
	s := newTestStore(t)
	today := habit.Today()

	col, err := s.All()
	if err != nil || len(col) != 0 {
		t.Fatalf("fresh store: col=%v err=%v", col, err)
	}

	s.Create("Read")
	col, _ = s.All()
	if h := col["Read"]; h.Color != habit.DefaultColor || len(h.Dates) != 0 {
		t.Fatalf("after create: %+v", col["Read"])
	}

	s.ToggleDate("Read", today)
	col, _ = s.All()
	if !col["Read"].DoneOn(today) {
		t.Fatal("today should be done")
	}

	s.ToggleDate("Read", today)
	col, _ = s.All()
	if col["Read"].DoneOn(today) {
		t.Fatal("today should be falsy after second toggle")
	}

	s.Delete("Read")
	col, _ = s.All()
	if len(col) != 0 {
		t.Fatal("collection should be empty after delete")
	}
}
