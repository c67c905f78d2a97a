package storage

import (
	"github.com/calebmarsh/tend/internal/constants"
	"github.com/calebmarsh/tend/internal/models"
)

// DefaultUserData is the document a fresh install starts from: opening the
// app counts as the first logged-in day.
func DefaultUserData(today string) models.UserData {
	return models.UserData{
		Name:              constants.DefaultUserName,
		TotalDaysLoggedIn: 1,
		LastLoginDate:     today,
		ActiveHabits:      []models.HabitProgress{},
	}
}

// RecordLogin accrues one logged-in day when the document was last opened on
// an earlier date. Calling it again on the same day changes nothing, so a
// session may record its login unconditionally.
func RecordLogin(doc models.UserData, today string) models.UserData {
	if doc.LastLoginDate == today {
		return doc
	}
	doc.TotalDaysLoggedIn++
	doc.LastLoginDate = today
	return doc
}

// UpsertHabit inserts the record, or replaces an existing record with the
// same habit ID in place, keeping its position in the sequence.
func UpsertHabit(doc models.UserData, rec models.HabitProgress) models.UserData {
	habits := make([]models.HabitProgress, len(doc.ActiveHabits))
	copy(habits, doc.ActiveHabits)

	for i, p := range habits {
		if p.HabitID == rec.HabitID {
			habits[i] = rec
			doc.ActiveHabits = habits
			return doc
		}
	}

	doc.ActiveHabits = append(habits, rec)
	return doc
}

// ApplyHabitUpdate merges a partial update into the record with the given
// habit ID, leaving every other record untouched. An unknown habit ID is a
// no-op, not an error.
func ApplyHabitUpdate(doc models.UserData, habitID string, update models.ProgressUpdate) models.UserData {
	for i, p := range doc.ActiveHabits {
		if p.HabitID != habitID {
			continue
		}

		if update.Streak != nil {
			p.Streak = *update.Streak
		}
		if update.Completions != nil {
			p.Completions = update.Completions
		}
		if update.Relapses != nil {
			p.Relapses = update.Relapses
		}
		if update.Notes != nil {
			p.Notes = update.Notes
		}
		if update.LastCompleted != nil {
			p.LastCompleted = *update.LastCompleted
		}

		habits := make([]models.HabitProgress, len(doc.ActiveHabits))
		copy(habits, doc.ActiveHabits)
		habits[i] = p
		doc.ActiveHabits = habits
		return doc
	}

	return doc
}
