package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/calebmarsh/tend/internal/catalog"
	"github.com/calebmarsh/tend/internal/constants"
	"github.com/calebmarsh/tend/internal/engine"
	"github.com/calebmarsh/tend/internal/models"
)

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *Context) error {
	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}

	if len(doc.ActiveHabits) == 0 {
		fmt.Println("No progress yet. Start tracking with 'tend habits'.")
		return nil
	}

	today := ctx.Today()

	fmt.Printf("Welcome back, %s!\n\n", doc.Name)
	fmt.Printf("Active habits:     %d\n", len(doc.ActiveHabits))
	fmt.Printf("Total streak:      %d\n", doc.TotalStreak())
	fmt.Printf("Total completions: %d\n", doc.TotalCompletions())
	fmt.Printf("Days logged in:    %d\n", doc.TotalDaysLoggedIn)

	c.printWeeklyActivity(ctx, doc.ActiveHabits)

	fmt.Println("\nHabit breakdown:")
	for _, rec := range doc.ActiveHabits {
		name := rec.HabitID
		if h, ok := catalog.Get(rec.HabitID); ok {
			name = h.Name
		}

		days, err := engine.DaysActive(rec.StartDate, today)
		if err != nil {
			return err
		}
		rate, err := engine.CompletionRate(rec, today)
		if err != nil {
			return err
		}

		fmt.Printf("\n  %s\n", name)
		fmt.Printf("    day %d of tracking, %d completions, %d day streak\n", days, len(rec.Completions), rec.Streak)
		fmt.Printf("    %3d%% %s\n", rate, progressBar(rate))
		if len(rec.Relapses) > 0 {
			fmt.Printf("    %d lapse(s) logged\n", len(rec.Relapses))
		}
	}

	// Loose achievement thresholds, same as the original app used.
	fmt.Println()
	if doc.TotalStreak() >= 7 {
		fmt.Println("Achievement unlocked: week warrior (total streak >= 7)")
	}
	if doc.TotalCompletions() >= 30 {
		fmt.Println("Achievement unlocked: consistency champion (30+ completions)")
	}

	return nil
}

// printWeeklyActivity renders completions per day for the last 7 days.
func (c *ProgressCmd) printWeeklyActivity(ctx *Context, habits []models.HabitProgress) {
	fmt.Println("\nWeekly activity:")
	for _, day := range lastSevenDays(ctx.Now()) {
		count := 0
		for _, rec := range habits {
			if rec.CompletedOn(day) {
				count++
			}
		}

		weekday, _ := time.Parse(constants.DateFormat, day)
		fmt.Printf("  %s %s  %s %d\n", weekday.Format("Mon"), day, strings.Repeat("#", count), count)
	}
}

func progressBar(rate int) string {
	// Rates above 100 are possible; the bar is clamped, the number is not.
	filled := rate / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 10-filled) + "]"
}

func lastSevenDays(now time.Time) []string {
	days := make([]string, 7)
	for i := 0; i < 7; i++ {
		days[i] = now.AddDate(0, 0, -(6 - i)).Format(constants.DateFormat)
	}
	return days
}
