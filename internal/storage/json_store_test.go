package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/calebmarsh/tend/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, 1, 5, 12, 30, 0, 0, time.UTC) }
	return NewJSONStore(filepath.Join(t.TempDir(), "tend.json"), clock)
}

func TestJSONStore_LoadMissingFileReturnsDefault(t *testing.T) {
	s := newTestJSONStore(t)

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Name != "User" || doc.TotalDaysLoggedIn != 1 {
		t.Errorf("expected default document, got %+v", doc)
	}
	if doc.LastLoginDate != "2024-01-05" {
		t.Errorf("expected last login set to today, got %s", doc.LastLoginDate)
	}
	if len(doc.ActiveHabits) != 0 {
		t.Errorf("expected no active habits, got %v", doc.ActiveHabits)
	}
}

func TestJSONStore_LoadCorruptFileFailsOpen(t *testing.T) {
	s := newTestJSONStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.TotalDaysLoggedIn != 1 || len(doc.ActiveHabits) != 0 {
		t.Errorf("expected default document for corrupt file, got %+v", doc)
	}
}

func TestJSONStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestJSONStore(t)

	doc := models.UserData{
		Name:              "Caleb",
		TotalDaysLoggedIn: 12,
		LastLoginDate:     "2024-01-05",
		ActiveHabits: []models.HabitProgress{
			{
				HabitID:        "quit-phone-use",
				StartDate:      "2024-01-01",
				SelectedMethod: "Habit Swap",
				Streak:         2,
				Completions:    []string{"2024-01-04", "2024-01-05"},
				Relapses:       []string{"2024-01-02", "2024-01-02"},
				Notes:          map[string]string{"2024-01-04": "left phone in kitchen"},
				LastCompleted:  "2024-01-05",
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

func TestJSONStore_SaveOverwritesWholeDocument(t *testing.T) {
	s := newTestJSONStore(t)

	first := DefaultUserData("2024-01-05")
	first = UpsertHabit(first, models.HabitProgress{HabitID: "drink-water", StartDate: "2024-01-05", SelectedMethod: "Habit Stacking"})
	if err := s.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second := DefaultUserData("2024-01-06")
	if err := s.Save(second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.ActiveHabits) != 0 {
		t.Errorf("expected prior habits gone after overwrite, got %v", got.ActiveHabits)
	}
}

func TestJSONStore_WireFormat(t *testing.T) {
	s := newTestJSONStore(t)

	doc := DefaultUserData("2024-01-05")
	doc = UpsertHabit(doc, models.HabitProgress{
		HabitID:        "drink-water",
		StartDate:      "2024-01-05",
		SelectedMethod: "Habit Stacking",
		Completions:    []string{},
		Relapses:       []string{},
		Notes:          map[string]string{},
	})
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}

	for _, key := range []string{`"name"`, `"totalDaysLoggedIn"`, `"lastLoginDate"`, `"activeHabits"`, `"habitId"`, `"startDate"`, `"selectedMethod"`, `"streak"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected key %s in persisted document", key)
		}
	}
}
