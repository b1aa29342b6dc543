// Package styles defines the lipgloss styles shared by the views.
package styles

import "github.com/charmbracelet/lipgloss"

// Core UI styles
var (
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00D7D7")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1)

	Pane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1)

	PaneTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7B61FF"))

	Selected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F")).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	Empty = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Italic(true)

	Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F"))

	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9"))

	Spinner = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD75F"))
)

// Popup styles for the directory browser modal
var (
	Popup = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#7B61FF")).
		Padding(0, 1)

	PopupPath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D7D7"))
)
