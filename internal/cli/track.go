package cli

import (
	"fmt"

	"github.com/calebmarsh/tend/internal/catalog"
	"github.com/calebmarsh/tend/internal/engine"
	"github.com/calebmarsh/tend/internal/logger"
	"github.com/calebmarsh/tend/internal/storage"
)

type DoneCmd struct {
	Habit string `arg:"" help:"Habit ID to mark done."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DoneCmd) Run(ctx *Context) error {
	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}

	rec, ok := doc.FindHabit(c.Habit)
	if !ok {
		return fmt.Errorf("not tracking %q, start it with 'tend start %s'", c.Habit, c.Habit)
	}

	day, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	if rec.CompletedOn(day) {
		fmt.Printf("%s is already marked for %s.\n", c.Habit, day)
		return nil
	}

	update, err := engine.MarkComplete(rec, day)
	if err != nil {
		return err
	}

	doc = storage.ApplyHabitUpdate(doc, c.Habit, update)
	if err := ctx.Store.Save(doc); err != nil {
		return err
	}

	logger.Debug("marked complete", "habit", c.Habit, "day", day, "streak", *update.Streak)

	h, _ := catalog.Get(c.Habit)
	if h.IsBreak() {
		fmt.Printf("Resisted %q on %s. Streak: %d\n", c.Habit, day, *update.Streak)
	} else {
		fmt.Printf("Marked %q done on %s. Streak: %d\n", c.Habit, day, *update.Streak)
	}
	return nil
}

type RelapseCmd struct {
	Habit string `arg:"" help:"Habit ID to log a lapse for."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *RelapseCmd) Run(ctx *Context) error {
	h, ok := catalog.Get(c.Habit)
	if ok && !h.IsBreak() {
		return fmt.Errorf("%q is a habit to build; relapses only apply to break habits", c.Habit)
	}

	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}

	rec, ok := doc.FindHabit(c.Habit)
	if !ok {
		return fmt.Errorf("not tracking %q, start it with 'tend start %s'", c.Habit, c.Habit)
	}

	day, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	update, err := engine.LogRelapse(rec, day)
	if err != nil {
		return err
	}

	doc = storage.ApplyHabitUpdate(doc, c.Habit, update)
	if err := ctx.Store.Save(doc); err != nil {
		return err
	}

	logger.Debug("logged relapse", "habit", c.Habit, "day", day)

	fmt.Printf("Logged a lapse for %q on %s. Streak reset.\n", c.Habit, day)
	fmt.Println("A lapse is not the end. Support resources: tend hotline")
	return nil
}

type NoteCmd struct {
	Habit string `arg:"" help:"Habit ID to attach the note to."`
	Text  string `arg:"" help:"Note text. An empty string clears nothing; it is stored as-is."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteCmd) Run(ctx *Context) error {
	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}

	rec, ok := doc.FindHabit(c.Habit)
	if !ok {
		return fmt.Errorf("not tracking %q, start it with 'tend start %s'", c.Habit, c.Habit)
	}

	day, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	update, err := engine.SetNote(rec, day, c.Text)
	if err != nil {
		return err
	}

	doc = storage.ApplyHabitUpdate(doc, c.Habit, update)
	if err := ctx.Store.Save(doc); err != nil {
		return err
	}

	fmt.Printf("Saved note for %q on %s.\n", c.Habit, day)
	return nil
}
