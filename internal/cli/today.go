package cli

import (
	"fmt"

	"github.com/calebmarsh/tend/internal/catalog"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}

	if len(doc.ActiveHabits) == 0 {
		fmt.Println("No habits tracked yet. Pick one with 'tend habits'.")
		return nil
	}

	today := ctx.Today()
	fmt.Printf("Habits for %s:\n\n", today)

	recorded := 0
	for _, rec := range doc.ActiveHabits {
		status := "[ ]"
		if rec.CompletedOn(today) {
			status = "[x]"
			recorded++
		}

		name := rec.HabitID
		verb := ""
		if h, ok := catalog.Get(rec.HabitID); ok {
			name = h.Name
			if h.IsBreak() && !rec.CompletedOn(today) {
				verb = " (mark resisted)"
			}
		}

		line := fmt.Sprintf("%s %s%s", status, name, verb)
		if rec.RelapsedOn(today) {
			line += "  [lapsed today]"
		}
		if note, ok := rec.Notes[today]; ok && note != "" {
			line += fmt.Sprintf("  note: %s", note)
		}
		fmt.Println(line)
	}

	fmt.Printf("\nRecorded: %d/%d\n", recorded, len(doc.ActiveHabits))
	return nil
}
