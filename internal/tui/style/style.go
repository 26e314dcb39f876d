// Package style defines lipgloss styles for the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use. Track and thumb colors are animated and
// therefore built per frame by the flipswitch component, not here.
//
// Variable names intentionally omit "Style" suffix since they're accessed
// via the style package (e.g., style.Title reads better than style.TitleStyle).
var (
	// Title is used for demo headers and switch captions.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Subtitle is used for secondary text under a caption.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Key is used for highlighting keyboard keys.
	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// Muted is used for de-emphasized text (e.g., state readouts).
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Trace is used for the progress trace strip.
	Trace = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63"))

	// Focus marks the switch that keyboard input goes to.
	Focus = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)
)
