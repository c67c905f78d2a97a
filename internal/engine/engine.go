// Package engine computes habit progress transitions. Every function is pure:
// the current date is an explicit argument, records are never mutated in
// place, and results come back as a partial update for the caller to apply
// and persist.
package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/calebmarsh/tend/internal/constants"
	"github.com/calebmarsh/tend/internal/models"
)

func parseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", day, err)
	}
	return t, nil
}

// ComputeStreak counts qualifying recent completion days, walking the
// completion set newest-first. Starting from today, each date counts when its
// gap to the previous counted date is at most streak+1 days; the walk stops
// at the first date that misses. The growing tolerance means the result is
// not a strict consecutive-day count; callers rely on this exact rule.
func ComputeStreak(completions []string, today string) (int, error) {
	if len(completions) == 0 {
		return 0, nil
	}

	cursor, err := parseDay(today)
	if err != nil {
		return 0, err
	}

	days := make([]time.Time, 0, len(completions))
	for _, d := range completions {
		t, err := parseDay(d)
		if err != nil {
			return 0, err
		}
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	for _, day := range days {
		gapDays := int(math.Ceil(cursor.Sub(day).Hours() / 24))
		if gapDays > streak+1 {
			break
		}
		streak++
		cursor = day
	}

	return streak, nil
}

// MarkComplete records a completion for today. Marking an already-completed
// day is a no-op: the returned update is empty. Otherwise the completion set
// gains today, the streak is recomputed over the new set, and LastCompleted
// moves to today.
func MarkComplete(p models.HabitProgress, today string) (models.ProgressUpdate, error) {
	if _, err := parseDay(today); err != nil {
		return models.ProgressUpdate{}, err
	}

	if p.CompletedOn(today) {
		return models.ProgressUpdate{}, nil
	}

	completions := make([]string, 0, len(p.Completions)+1)
	completions = append(completions, p.Completions...)
	completions = append(completions, today)

	streak, err := ComputeStreak(completions, today)
	if err != nil {
		return models.ProgressUpdate{}, err
	}

	day := today
	return models.ProgressUpdate{
		Completions:   completions,
		Streak:        &streak,
		LastCompleted: &day,
	}, nil
}

// LogRelapse appends today to the relapse log and resets the streak to zero.
// Duplicate relapse dates are kept; logging twice on the same day records two
// lapses, and the reset applies either way.
func LogRelapse(p models.HabitProgress, today string) (models.ProgressUpdate, error) {
	if _, err := parseDay(today); err != nil {
		return models.ProgressUpdate{}, err
	}

	relapses := make([]string, 0, len(p.Relapses)+1)
	relapses = append(relapses, p.Relapses...)
	relapses = append(relapses, today)

	zero := 0
	return models.ProgressUpdate{
		Relapses: relapses,
		Streak:   &zero,
	}, nil
}

// SetNote stores a note for today, replacing any existing note for that day.
// An empty string is a valid note and is distinct from having no note.
func SetNote(p models.HabitProgress, today, text string) (models.ProgressUpdate, error) {
	if _, err := parseDay(today); err != nil {
		return models.ProgressUpdate{}, err
	}

	notes := make(map[string]string, len(p.Notes)+1)
	for day, note := range p.Notes {
		notes[day] = note
	}
	notes[today] = text

	return models.ProgressUpdate{Notes: notes}, nil
}

// DaysActive returns how many calendar days the habit has been tracked,
// counting the start date itself as day 1.
func DaysActive(startDate, today string) (int, error) {
	start, err := parseDay(startDate)
	if err != nil {
		return 0, err
	}
	now, err := parseDay(today)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(now.Sub(start).Hours()/24)) + 1, nil
}

// CompletionRate returns the percentage of active days with a completion,
// rounded to the nearest integer. Completions recorded outside the active
// window are still counted, so rates above 100 are possible.
func CompletionRate(p models.HabitProgress, today string) (int, error) {
	days, err := DaysActive(p.StartDate, today)
	if err != nil {
		return 0, err
	}
	if days <= 0 {
		return 0, fmt.Errorf("habit %s start date %s is after %s", p.HabitID, p.StartDate, today)
	}
	return int(math.Round(100 * float64(len(p.Completions)) / float64(days))), nil
}
