package cli

import (
	"fmt"

	"github.com/calebmarsh/tend/internal/catalog"
	"github.com/calebmarsh/tend/internal/models"
)

type HabitsCmd struct {
	Build bool `help:"Show only habits to build."`
	Break bool `help:"Show only habits to break."`
}

func (c *HabitsCmd) Run(ctx *Context) error {
	var habits []models.Habit
	switch {
	case c.Build && !c.Break:
		habits = catalog.Build()
	case c.Break && !c.Build:
		habits = catalog.Break()
	default:
		habits = catalog.All()
	}

	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}

	for _, h := range habits {
		marker := " "
		if _, started := doc.FindHabit(h.ID); started {
			marker = "*"
		}
		fmt.Printf("%s %-22s [%s]  %s\n", marker, h.ID, h.Kind, h.Name)
	}
	fmt.Println("\n* = already tracking. Use 'tend show <habit>' for methods.")

	return nil
}

type ShowCmd struct {
	Habit string `arg:"" help:"Habit ID from 'tend habits'."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	h, ok := catalog.Get(c.Habit)
	if !ok {
		return fmt.Errorf("habit %q not found, run 'tend habits' to list ids", c.Habit)
	}

	fmt.Printf("%s (%s)\n\n", h.Name, h.Kind)
	fmt.Println(h.Description)
	if h.Quote != "" {
		fmt.Printf("\n%s\n", h.Quote)
	}

	fmt.Println("\nMethods:")
	for i, m := range h.Methods {
		fmt.Printf("  %d. %-22s %s\n", i+1, m.Name, m.Description)
	}

	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}
	if rec, started := doc.FindHabit(h.ID); started {
		fmt.Printf("\nTracking since %s with %q (streak: %d)\n", rec.StartDate, rec.SelectedMethod, rec.Streak)
	} else {
		fmt.Printf("\nStart tracking with: tend start %s\n", h.ID)
	}

	return nil
}
