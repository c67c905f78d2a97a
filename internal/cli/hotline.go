package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type hotlineEntry struct {
	Name        string
	Number      string
	Description string
}

// Support directory shown alongside break-habit plans. Static content, kept
// in code like the rest of the authored copy.
var hotlines = []hotlineEntry{
	{
		Name:        "Crisis Text Line",
		Number:      "Text HOME to 741741",
		Description: "24/7 crisis support via text message",
	},
	{
		Name:        "National Suicide Prevention Lifeline",
		Number:      "988",
		Description: "Free and confidential emotional support",
	},
	{
		Name:        "SAMHSA National Helpline",
		Number:      "1-800-662-4357",
		Description: "Treatment referral and information service",
	},
	{
		Name:        "Crisis Support Services",
		Number:      "1-800-273-8255",
		Description: "Available 24/7 for immediate support",
	},
}

type HotlineCmd struct{}

func (c *HotlineCmd) Run(ctx *Context) error {
	title := lipgloss.NewStyle().Bold(true)
	number := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	notice := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	fmt.Println(title.Render("Support Hotline"))
	fmt.Println("Get help when you need it. Reaching out is a strength, not a weakness.")
	fmt.Println()
	fmt.Println(notice.Render("In a life-threatening emergency, call 911 immediately."))
	fmt.Println()

	for _, h := range hotlines {
		fmt.Println(title.Render(h.Name))
		fmt.Printf("  %s\n", number.Render(h.Number))
		fmt.Printf("  %s\n\n", h.Description)
	}

	return nil
}
