// Package tui provides the interactive task list front-end.
// The manager is synchronous and in-process, so updates call it directly
// and re-read a fresh snapshot instead of going through async messages.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskdeck/internal/domain"
	"github.com/runoshun/taskdeck/internal/manager"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeConfirmDelete
)

// Model is the task list TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	tasks *manager.Manager

	// State
	items    []*domain.Task
	deleteID string

	// Components
	keys     KeyMap
	styles   Styles
	addInput textinput.Model

	// Numeric state
	cursor int
	width  int
	height int
	mode   Mode
}

// New creates a new task list model backed by the given manager.
func New(tasks *manager.Manager) *Model {
	ai := textinput.New()
	ai.Placeholder = "Task title..."
	ai.CharLimit = 200

	return &Model{
		tasks:    tasks,
		items:    tasks.GetAllTasks(),
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		addInput: ai,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads the collection snapshot and clamps the cursor.
func (m *Model) refresh() {
	m.items = m.tasks.GetAllTasks()
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// current returns the task under the cursor, or nil.
func (m *Model) current() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor]
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case ModeAdd:
			return m.updateAddMode(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDeleteMode(msg)
		default:
			return m.updateNormalMode(msg)
		}
	}
	return m, nil
}

func (m *Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if t := m.current(); t != nil {
			_, _ = m.tasks.UpdateTask(t.ID, domain.Patch{Completed: domain.Set(!t.Completed)})
			m.refresh()
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.addInput.SetValue("")
		return m, m.addInput.Focus()
	case key.Matches(msg, m.keys.Delete):
		if t := m.current(); t != nil {
			m.deleteID = t.ID
			m.mode = ModeConfirmDelete
		}
	}
	return m, nil
}

func (m *Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.addInput.Blur()
		return m, nil
	case tea.KeyEnter:
		if title := strings.TrimSpace(m.addInput.Value()); title != "" {
			m.tasks.AddTask(title, nil, nil)
		}
		m.mode = ModeNormal
		m.addInput.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirmDeleteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.tasks.DeleteTask(m.deleteID)
		m.deleteID = ""
		m.mode = ModeNormal
		m.refresh()
	case key.Matches(msg, m.keys.Cancel):
		m.deleteID = ""
		m.mode = ModeNormal
	}
	return m, nil
}

// View renders the task list.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("taskdeck"))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString("No tasks. Press 'a' to add one.\n")
	}

	now := time.Now()
	for i, t := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}

		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", check, t.Title)
		if t.Completed {
			line = m.styles.Done.Render(line)
		}

		due := ""
		if t.DueDate != nil {
			label := "due " + t.DueDate.Format("2006-01-02")
			if !t.Completed && t.DueDate.Before(now) {
				due = " " + m.styles.Overdue.Render(label)
			} else {
				due = " " + m.styles.Due.Render(label)
			}
		}

		b.WriteString(cursor + line + due + "\n")
	}

	b.WriteString("\n")
	switch m.mode {
	case ModeAdd:
		b.WriteString(m.styles.Prompt.Render("New task: ") + m.addInput.View() + "\n")
	case ModeConfirmDelete:
		b.WriteString(m.styles.Prompt.Render(fmt.Sprintf("Delete task #%s? (y/n)", m.deleteID)) + "\n")
	default:
		b.WriteString(m.styles.Help.Render("j/k move | space toggle | a add | d delete | q quit") + "\n")
	}

	return b.String()
}
