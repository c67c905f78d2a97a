package storage

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/calebmarsh/tend/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, 1, 5, 12, 30, 0, 0, time.UTC) }
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "tend.db"), clock)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_LoadFreshReturnsDefault(t *testing.T) {
	s := newTestSQLiteStore(t)

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Name != "User" || doc.TotalDaysLoggedIn != 1 || doc.LastLoginDate != "2024-01-05" {
		t.Errorf("expected default document, got %+v", doc)
	}
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	doc := models.UserData{
		Name:              "Caleb",
		TotalDaysLoggedIn: 3,
		LastLoginDate:     "2024-01-05",
		ActiveHabits: []models.HabitProgress{
			{
				HabitID:        "drink-water",
				StartDate:      "2024-01-03",
				SelectedMethod: "Habit Stacking",
				Streak:         3,
				Completions:    []string{"2024-01-03", "2024-01-04", "2024-01-05"},
				Relapses:       []string{},
				Notes:          map[string]string{"2024-01-03": "first day"},
				LastCompleted:  "2024-01-05",
			},
			{
				HabitID:        "quit-phone-use",
				StartDate:      "2024-01-01",
				SelectedMethod: "Scheduled Lockouts",
				Streak:         0,
				Completions:    []string{"2024-01-02"},
				Relapses:       []string{"2024-01-03", "2024-01-03", "2024-01-05"},
				Notes:          map[string]string{},
			},
		},
	}

	if err := s.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(doc, got) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", doc, got)
	}
}

func TestSQLiteStore_RelapseDuplicatesSurviveRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	doc := DefaultUserData("2024-01-05")
	doc = UpsertHabit(doc, models.HabitProgress{
		HabitID:        "stop-procrastinating",
		StartDate:      "2024-01-01",
		SelectedMethod: "5-Minute Rule",
		Completions:    []string{},
		Relapses:       []string{"2024-01-05", "2024-01-05"},
		Notes:          map[string]string{},
	})

	if err := s.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rec, ok := got.FindHabit("stop-procrastinating")
	if !ok {
		t.Fatal("habit missing after round trip")
	}
	if !reflect.DeepEqual(rec.Relapses, []string{"2024-01-05", "2024-01-05"}) {
		t.Errorf("expected duplicate relapses preserved, got %v", rec.Relapses)
	}
}

func TestSQLiteStore_HabitOrderPreserved(t *testing.T) {
	s := newTestSQLiteStore(t)

	doc := DefaultUserData("2024-01-05")
	for _, id := range []string{"wake-early", "drink-water", "meditation"} {
		doc = UpsertHabit(doc, models.HabitProgress{
			HabitID:        id,
			StartDate:      "2024-01-05",
			SelectedMethod: "m",
			Completions:    []string{},
			Relapses:       []string{},
			Notes:          map[string]string{},
		})
	}

	if err := s.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"wake-early", "drink-water", "meditation"}
	for i, id := range want {
		if got.ActiveHabits[i].HabitID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got.ActiveHabits[i].HabitID)
		}
	}
}
