// Package tui provides the Bubble Tea TUI for minawallet.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	ColorBrand   = lipgloss.Color("208") // Mina orange
	ColorMuted   = lipgloss.Color("241") // Labels, static text
	ColorNormal  = lipgloss.Color("252") // Paragraphs
	ColorBright  = lipgloss.Color("255") // Dynamic values, emphasis
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorDanger  = lipgloss.Color("196") // Red
	ColorWarning = lipgloss.Color("220") // Yellow
	ColorBorder  = lipgloss.Color("238") // Subtle border
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorBrand).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorBright)

	selectedStyle = lipgloss.NewStyle().
			Foreground(ColorBrand).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	warningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 1, 0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)
)
