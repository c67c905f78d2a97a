package cli

import (
	"fmt"
	"strings"
)

type NameCmd struct {
	Name []string `arg:"" optional:"" help:"Display name to set. Prints the current name when omitted."`
}

func (c *NameCmd) Run(ctx *Context) error {
	doc, err := ctx.OpenDocument()
	if err != nil {
		return err
	}

	if len(c.Name) == 0 {
		fmt.Printf("Display name: %s\n", doc.Name)
		return nil
	}

	name := strings.TrimSpace(strings.Join(c.Name, " "))
	if name == "" {
		return fmt.Errorf("display name cannot be empty")
	}

	doc.Name = name
	if err := ctx.Store.Save(doc); err != nil {
		return err
	}

	fmt.Printf("Display name set to %q.\n", name)
	return nil
}
