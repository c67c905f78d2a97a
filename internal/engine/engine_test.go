package engine

import (
	"reflect"
	"testing"

	"github.com/calebmarsh/tend/internal/models"
)

func TestComputeStreak_ConsecutiveDays(t *testing.T) {
	completions := []string{"2024-01-05", "2024-01-04", "2024-01-03"}

	streak, err := ComputeStreak(completions, "2024-01-05")
	if err != nil {
		t.Fatalf("ComputeStreak failed: %v", err)
	}

	if streak != 3 {
		t.Errorf("expected streak 3, got %d", streak)
	}
}

func TestComputeStreak_GapBreaksRun(t *testing.T) {
	// 2024-01-01 is 4 days before today; the allowed gap after counting
	// today is streak+1 = 2, so only today counts.
	completions := []string{"2024-01-05", "2024-01-01"}

	streak, err := ComputeStreak(completions, "2024-01-05")
	if err != nil {
		t.Fatalf("ComputeStreak failed: %v", err)
	}

	if streak != 1 {
		t.Errorf("expected streak 1, got %d", streak)
	}
}

func TestComputeStreak_GrowingTolerance(t *testing.T) {
	// The gap allowance widens as the streak grows: after counting two
	// days the next gap may be up to 3 days. This is the historical
	// behavior and must not be tightened to strict adjacency.
	completions := []string{"2024-01-10", "2024-01-09", "2024-01-06"}

	streak, err := ComputeStreak(completions, "2024-01-10")
	if err != nil {
		t.Fatalf("ComputeStreak failed: %v", err)
	}

	if streak != 3 {
		t.Errorf("expected streak 3 with widened gap, got %d", streak)
	}
}

func TestComputeStreak_NoCompletionToday(t *testing.T) {
	// Yesterday's completion still counts: the first gap may be 1 day.
	completions := []string{"2024-01-04", "2024-01-03"}

	streak, err := ComputeStreak(completions, "2024-01-05")
	if err != nil {
		t.Fatalf("ComputeStreak failed: %v", err)
	}

	if streak != 2 {
		t.Errorf("expected streak 2, got %d", streak)
	}
}

func TestComputeStreak_EmptyAndBounds(t *testing.T) {
	streak, err := ComputeStreak(nil, "2024-01-05")
	if err != nil {
		t.Fatalf("ComputeStreak failed: %v", err)
	}
	if streak != 0 {
		t.Errorf("expected streak 0 for empty set, got %d", streak)
	}

	// Never more than the number of completions, regardless of order.
	completions := []string{"2024-01-03", "2024-01-05", "2024-01-04"}
	streak, err = ComputeStreak(completions, "2024-01-05")
	if err != nil {
		t.Fatalf("ComputeStreak failed: %v", err)
	}
	if streak < 0 || streak > len(completions) {
		t.Errorf("streak %d out of range [0, %d]", streak, len(completions))
	}
	if streak != 3 {
		t.Errorf("expected streak 3 for unsorted input, got %d", streak)
	}
}

func TestComputeStreak_InvalidDate(t *testing.T) {
	if _, err := ComputeStreak([]string{"01/05/2024"}, "2024-01-05"); err == nil {
		t.Error("expected error for malformed completion date")
	}
	if _, err := ComputeStreak([]string{"2024-01-05"}, "not-a-date"); err == nil {
		t.Error("expected error for malformed today date")
	}
}

func TestMarkComplete_AddsCompletion(t *testing.T) {
	p := models.HabitProgress{
		HabitID:     "drink-water",
		StartDate:   "2024-01-03",
		Completions: []string{"2024-01-03", "2024-01-04"},
	}

	update, err := MarkComplete(p, "2024-01-05")
	if err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}

	wantCompletions := []string{"2024-01-03", "2024-01-04", "2024-01-05"}
	if !reflect.DeepEqual(update.Completions, wantCompletions) {
		t.Errorf("expected completions %v, got %v", wantCompletions, update.Completions)
	}
	if update.Streak == nil || *update.Streak != 3 {
		t.Errorf("expected streak 3, got %v", update.Streak)
	}
	if update.LastCompleted == nil || *update.LastCompleted != "2024-01-05" {
		t.Errorf("expected lastCompleted 2024-01-05, got %v", update.LastCompleted)
	}
}

func TestMarkComplete_IdempotentPerDay(t *testing.T) {
	p := models.HabitProgress{
		HabitID:     "drink-water",
		StartDate:   "2024-01-05",
		Completions: []string{"2024-01-05"},
	}

	update, err := MarkComplete(p, "2024-01-05")
	if err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}

	empty := models.ProgressUpdate{}
	if !reflect.DeepEqual(update, empty) {
		t.Errorf("expected empty update for already-completed day, got %+v", update)
	}
}

func TestMarkComplete_DoesNotMutateRecord(t *testing.T) {
	completions := []string{"2024-01-04"}
	p := models.HabitProgress{HabitID: "meditation", StartDate: "2024-01-04", Completions: completions}

	if _, err := MarkComplete(p, "2024-01-05"); err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}

	if len(p.Completions) != 1 || p.Completions[0] != "2024-01-04" {
		t.Errorf("input record was mutated: %v", p.Completions)
	}
}

func TestLogRelapse_ResetsStreak(t *testing.T) {
	p := models.HabitProgress{
		HabitID:     "quit-phone-use",
		StartDate:   "2024-01-01",
		Streak:      9,
		Completions: []string{"2024-01-04", "2024-01-05"},
	}

	update, err := LogRelapse(p, "2024-01-05")
	if err != nil {
		t.Fatalf("LogRelapse failed: %v", err)
	}

	if update.Streak == nil || *update.Streak != 0 {
		t.Errorf("expected streak reset to 0, got %v", update.Streak)
	}
	if !reflect.DeepEqual(update.Relapses, []string{"2024-01-05"}) {
		t.Errorf("expected relapse logged for today, got %v", update.Relapses)
	}
	if update.Completions != nil {
		t.Errorf("relapse must not touch completions, got %v", update.Completions)
	}
}

func TestLogRelapse_DuplicatesKept(t *testing.T) {
	p := models.HabitProgress{
		HabitID:  "quit-phone-use",
		Relapses: []string{"2024-01-05"},
	}

	update, err := LogRelapse(p, "2024-01-05")
	if err != nil {
		t.Fatalf("LogRelapse failed: %v", err)
	}

	want := []string{"2024-01-05", "2024-01-05"}
	if !reflect.DeepEqual(update.Relapses, want) {
		t.Errorf("expected duplicate relapse entries %v, got %v", want, update.Relapses)
	}
	if update.Streak == nil || *update.Streak != 0 {
		t.Errorf("expected streak reset even on duplicate day, got %v", update.Streak)
	}
}

func TestSetNote_OverwritesExisting(t *testing.T) {
	p := models.HabitProgress{
		HabitID: "meditation",
		Notes:   map[string]string{"2024-01-04": "short session", "2024-01-05": "old"},
	}

	update, err := SetNote(p, "2024-01-05", "felt great")
	if err != nil {
		t.Fatalf("SetNote failed: %v", err)
	}

	if update.Notes["2024-01-05"] != "felt great" {
		t.Errorf("expected note overwritten, got %q", update.Notes["2024-01-05"])
	}
	if update.Notes["2024-01-04"] != "short session" {
		t.Errorf("expected other notes preserved, got %q", update.Notes["2024-01-04"])
	}
	if p.Notes["2024-01-05"] != "old" {
		t.Errorf("input notes were mutated: %q", p.Notes["2024-01-05"])
	}
}

func TestSetNote_EmptyStringIsValid(t *testing.T) {
	p := models.HabitProgress{HabitID: "meditation"}

	update, err := SetNote(p, "2024-01-05", "")
	if err != nil {
		t.Fatalf("SetNote failed: %v", err)
	}

	note, ok := update.Notes["2024-01-05"]
	if !ok {
		t.Fatal("expected an entry for today even with empty text")
	}
	if note != "" {
		t.Errorf("expected empty note, got %q", note)
	}
}

func TestDaysActive(t *testing.T) {
	cases := []struct {
		start, today string
		want         int
	}{
		{"2024-01-01", "2024-01-10", 10},
		{"2024-01-05", "2024-01-05", 1},
		{"2024-02-28", "2024-03-01", 3}, // leap year
	}

	for _, tc := range cases {
		got, err := DaysActive(tc.start, tc.today)
		if err != nil {
			t.Fatalf("DaysActive(%s, %s) failed: %v", tc.start, tc.today, err)
		}
		if got != tc.want {
			t.Errorf("DaysActive(%s, %s) = %d, want %d", tc.start, tc.today, got, tc.want)
		}
	}
}

func TestCompletionRate(t *testing.T) {
	p := models.HabitProgress{
		HabitID:   "drink-water",
		StartDate: "2024-01-01",
		Completions: []string{
			"2024-01-01", "2024-01-03", "2024-01-05", "2024-01-07", "2024-01-09",
		},
	}

	rate, err := CompletionRate(p, "2024-01-10")
	if err != nil {
		t.Fatalf("CompletionRate failed: %v", err)
	}

	if rate != 50 {
		t.Errorf("expected 50%%, got %d%%", rate)
	}
}

func TestCompletionRate_FutureStartDate(t *testing.T) {
	p := models.HabitProgress{HabitID: "drink-water", StartDate: "2024-02-01"}

	if _, err := CompletionRate(p, "2024-01-10"); err == nil {
		t.Error("expected error when start date is after today")
	}
}
