package tui

import (
	"fmt"
	"strings"

	"github.com/calebmarsh/tend/internal/catalog"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("tend :: %s", m.today)))
	b.WriteString("\n\n")

	if len(m.doc.ActiveHabits) == 0 {
		b.WriteString("  no habits yet. run `tend start <habit>` to pick one.\n")
	}

	for i, rec := range m.doc.ActiveHabits {
		mark := "[ ]"
		if rec.CompletedOn(m.today) {
			mark = "[x]"
		}

		name := rec.HabitID
		if h, ok := catalog.Get(rec.HabitID); ok {
			name = h.Name
		}

		line := fmt.Sprintf("%s %s (streak %d)", mark, name, rec.Streak)
		if rec.RelapsedOn(m.today) {
			line += lapsedStyle.Render(" lapsed today")
		} else if rec.CompletedOn(m.today) {
			line = doneStyle.Render(line)
		}
		if _, ok := rec.Notes[m.today]; ok {
			line += " *"
		}

		prefix := "  "
		if i == m.cursor && m.mode == modeList {
			prefix = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}

	b.WriteString("\n")

	if m.mode == modeNote {
		b.WriteString("  note for today (enter to save, esc to cancel)\n")
		b.WriteString("  " + m.noteInput.View() + "\n")
	} else {
		if m.err != nil {
			b.WriteString(statusStyle.Render("error: "+m.err.Error()) + "\n")
		} else if m.status != "" {
			b.WriteString(statusStyle.Render(m.status) + "\n")
		}
		b.WriteString("\n" + m.help.View(m.keys) + "\n")
	}

	return b.String()
}
