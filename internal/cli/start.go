package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/calebmarsh/tend/internal/catalog"
	"github.com/calebmarsh/tend/internal/models"
	"github.com/calebmarsh/tend/internal/storage"
)

type StartCmd struct {
	Habit  string `arg:"" help:"Habit ID from 'tend habits'."`
	Method string `short:"m" help:"Method name. Prompts interactively when omitted."`
}

func (c *StartCmd) Run(ctx *Context) error {
	h, ok := catalog.Get(c.Habit)
	if !ok {
		return fmt.Errorf("habit %q not found, run 'tend habits' to list ids", c.Habit)
	}

	method := c.Method
	if method == "" {
		picked, err := pickMethod(h)
		if err != nil {
			return err
		}
		method = picked
	} else if !hasMethod(h, method) {
		return fmt.Errorf("habit %q has no method %q, run 'tend show %s'", h.ID, method, h.ID)
	}

	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}

	if rec, started := doc.FindHabit(h.ID); started {
		return fmt.Errorf("already tracking %q since %s with %q", h.ID, rec.StartDate, rec.SelectedMethod)
	}

	rec := models.HabitProgress{
		HabitID:        h.ID,
		StartDate:      ctx.Today(),
		SelectedMethod: method,
		Streak:         0,
		Completions:    []string{},
		Relapses:       []string{},
		Notes:          map[string]string{},
	}

	doc = storage.UpsertHabit(doc, rec)
	if err := ctx.Store.Save(doc); err != nil {
		return err
	}

	if h.IsBreak() {
		fmt.Printf("Started breaking plan for %q with %q.\n", h.Name, method)
		fmt.Println("If it gets hard, support is a call away: tend hotline")
	} else {
		fmt.Printf("Started habit plan for %q with %q.\n", h.Name, method)
	}
	return nil
}

func pickMethod(h models.Habit) (string, error) {
	options := make([]huh.Option[string], 0, len(h.Methods))
	for _, m := range h.Methods {
		options = append(options, huh.NewOption(fmt.Sprintf("%s: %s", m.Name, m.Description), m.Name))
	}

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Pick a method for %q", h.Name)).
				Options(options...).
				Value(&choice),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("interactive form error: %w", err)
	}
	return choice, nil
}

func hasMethod(h models.Habit, name string) bool {
	for _, m := range h.Methods {
		if m.Name == name {
			return true
		}
	}
	return false
}
