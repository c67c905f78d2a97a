package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/calebmarsh/tend/internal/constants"
)

// HabitProgress is the user's tracking record for one habit. Dates are plain
// YYYY-MM-DD strings with no time component. Completions hold at most one
// entry per day; relapses may repeat; notes are keyed by day.
type HabitProgress struct {
	HabitID        string            `json:"habitId"`
	StartDate      string            `json:"startDate"`
	SelectedMethod string            `json:"selectedMethod"`
	Streak         int               `json:"streak"`
	Completions    []string          `json:"completions"`
	Relapses       []string          `json:"relapses"`
	Notes          map[string]string `json:"notes"`
	LastCompleted  string            `json:"lastCompleted,omitempty"`
}

// UserData is the whole persisted document: one per device, always written
// back in full.
type UserData struct {
	Name              string          `json:"name"`
	TotalDaysLoggedIn int             `json:"totalDaysLoggedIn"`
	LastLoginDate     string          `json:"lastLoginDate"`
	ActiveHabits      []HabitProgress `json:"activeHabits"`
}

// ProgressUpdate is a field-level partial update for a HabitProgress record.
// Nil fields are left untouched when the update is applied.
type ProgressUpdate struct {
	Streak        *int
	Completions   []string
	Relapses      []string
	Notes         map[string]string
	LastCompleted *string
}

// CompletedOn reports whether the habit was marked done on the given day.
func (p HabitProgress) CompletedOn(day string) bool {
	for _, d := range p.Completions {
		if d == day {
			return true
		}
	}
	return false
}

// RelapsedOn reports whether a lapse was logged on the given day.
func (p HabitProgress) RelapsedOn(day string) bool {
	for _, d := range p.Relapses {
		if d == day {
			return true
		}
	}
	return false
}

// FindHabit returns the progress record for habitID, or false if the user
// has not started that habit.
func (u UserData) FindHabit(habitID string) (HabitProgress, bool) {
	for _, p := range u.ActiveHabits {
		if p.HabitID == habitID {
			return p, true
		}
	}
	return HabitProgress{}, false
}

// TotalStreak sums the streaks of all active habits.
func (u UserData) TotalStreak() int {
	total := 0
	for _, p := range u.ActiveHabits {
		total += p.Streak
	}
	return total
}

// TotalCompletions counts completions across all active habits.
func (u UserData) TotalCompletions() int {
	total := 0
	for _, p := range u.ActiveHabits {
		total += len(p.Completions)
	}
	return total
}

func dateStrings(value interface{}) error {
	days, _ := value.([]string)
	for _, d := range days {
		if err := validation.Validate(d, validation.Required, validation.Date(constants.DateFormat)); err != nil {
			return err
		}
	}
	return nil
}

func noteKeys(value interface{}) error {
	notes, _ := value.(map[string]string)
	for day := range notes {
		if err := validation.Validate(day, validation.Required, validation.Date(constants.DateFormat)); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the structural invariants of a progress record. It is used
// by diagnostics, not by the load path: loading fails open instead.
func (p HabitProgress) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.HabitID, validation.Required),
		validation.Field(&p.StartDate, validation.Required, validation.Date(constants.DateFormat)),
		validation.Field(&p.SelectedMethod, validation.Required),
		validation.Field(&p.Streak, validation.Min(0)),
		validation.Field(&p.Completions, validation.By(dateStrings)),
		validation.Field(&p.Relapses, validation.By(dateStrings)),
		validation.Field(&p.Notes, validation.By(noteKeys)),
		validation.Field(&p.LastCompleted, validation.Date(constants.DateFormat)),
	)
}

// Validate checks the whole document: profile fields, per-record invariants,
// and habit ID uniqueness.
func (u UserData) Validate() error {
	if err := validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required),
		validation.Field(&u.TotalDaysLoggedIn, validation.Min(1)),
		validation.Field(&u.LastLoginDate, validation.Required, validation.Date(constants.DateFormat)),
	); err != nil {
		return err
	}

	seen := make(map[string]bool, len(u.ActiveHabits))
	for _, p := range u.ActiveHabits {
		if seen[p.HabitID] {
			return validation.NewError("validation_duplicate_habit", "duplicate habit id: "+p.HabitID)
		}
		seen[p.HabitID] = true
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
