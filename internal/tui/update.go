package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebmarsh/tend/internal/catalog"
	"github.com/calebmarsh/tend/internal/engine"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeNote {
			return m.updateNote(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.doc.ActiveHabits)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Done):
		m.markDone()
	case key.Matches(msg, m.keys.Relapse):
		m.logRelapse()
	case key.Matches(msg, m.keys.Note):
		m.openNote()
	}
	return m, nil
}

func (m *Model) markDone() {
	rec := m.current()
	if rec == nil {
		return
	}
	if rec.CompletedOn(m.today) {
		m.status = "already marked for today"
		return
	}
	update, err := engine.MarkComplete(*rec, m.today)
	if err != nil {
		m.err = err
		return
	}
	m.persist(rec.HabitID, update)
	m.status = fmt.Sprintf("%s marked done", rec.HabitID)
}

func (m *Model) logRelapse() {
	rec := m.current()
	if rec == nil {
		return
	}
	if h, ok := catalog.Get(rec.HabitID); ok && !h.IsBreak() {
		m.status = "lapses only apply to habits you are breaking"
		return
	}
	update, err := engine.LogRelapse(*rec, m.today)
	if err != nil {
		m.err = err
		return
	}
	m.persist(rec.HabitID, update)
	m.status = fmt.Sprintf("lapse logged for %s", rec.HabitID)
}

func (m *Model) openNote() {
	rec := m.current()
	if rec == nil {
		return
	}
	m.mode = modeNote
	m.noteInput.SetValue(rec.Notes[m.today])
	m.noteInput.CursorEnd()
	m.noteInput.Focus()
}

func (m Model) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.saveNote()
		m.mode = modeList
		m.noteInput.Blur()
		return m, nil
	case "esc":
		m.mode = modeList
		m.noteInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m *Model) saveNote() {
	rec := m.current()
	if rec == nil {
		return
	}
	update, err := engine.SetNote(*rec, m.today, m.noteInput.Value())
	if err != nil {
		m.err = err
		return
	}
	m.persist(rec.HabitID, update)
	m.status = fmt.Sprintf("note saved for %s", rec.HabitID)
}
