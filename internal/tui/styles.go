package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the task list.
type Styles struct {
	Title   lipgloss.Style
	Cursor  lipgloss.Style
	Done    lipgloss.Style
	Due     lipgloss.Style
	Overdue lipgloss.Style
	Help    lipgloss.Style
	Prompt  lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Done:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Strikethrough(true),
		Due:     lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Overdue: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	}
}
