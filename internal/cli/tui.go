package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebmarsh/tend/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx.Store, doc, ctx.Today())
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
