package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebmarsh/tend/internal/models"
	"github.com/calebmarsh/tend/internal/storage"
)

type mode int

const (
	modeList mode = iota
	modeNote
)

// Model is the interactive dashboard over the user's tracked habits.
type Model struct {
	store storage.Provider
	doc   models.UserData
	today string

	cursor    int
	mode      mode
	noteInput textinput.Model
	keys      KeyMap
	help      help.Model
	status    string
	err       error
}

func NewModel(store storage.Provider, doc models.UserData, today string) Model {
	ti := textinput.New()
	ti.Placeholder = "how did it go?"
	ti.CharLimit = 280
	ti.Width = 50

	return Model{
		store:     store,
		doc:       doc,
		today:     today,
		noteInput: ti,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) current() *models.HabitProgress {
	if m.cursor < 0 || m.cursor >= len(m.doc.ActiveHabits) {
		return nil
	}
	return &m.doc.ActiveHabits[m.cursor]
}

// persist applies an engine update to the in-memory document and writes the
// whole document through the store.
func (m *Model) persist(habitID string, update models.ProgressUpdate) {
	m.doc = storage.ApplyHabitUpdate(m.doc, habitID, update)
	if err := m.store.Save(m.doc); err != nil {
		m.err = err
	}
}
