package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive TUI and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
