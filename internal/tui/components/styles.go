// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/asta/internal/config/colors"
	"github.com/thenoetrevino/asta/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the app header
	TitleStyle lipgloss.Style

	// EntityPanelStyle frames the current entity
	EntityPanelStyle lipgloss.Style

	// CounterStyle renders "Rider 3/120"
	CounterStyle lipgloss.Style

	// NameStyle renders the entity name
	NameStyle lipgloss.Style

	// ReferenceStyle renders the spreadsheet value line
	ReferenceStyle lipgloss.Style

	// AssignedStyle and UnassignedStyle render the status line
	AssignedStyle   lipgloss.Style
	UnassignedStyle lipgloss.Style

	// DialogBoxStyle defines the assignment dialog (accent border)
	DialogBoxStyle lipgloss.Style

	// ConfirmBoxStyle defines the end-of-list prompt
	ConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the help overlay
	HelpBoxStyle lipgloss.Style

	// InputLabelStyle renders the field titles inside the dialog
	InputLabelStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	theme.Init(colors)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title)).
		Padding(0, 1)

	EntityPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Border)).
		Padding(1, 2)

	CounterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	NameStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ReferenceStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	AssignedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Assigned))

	UnassignedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Unassigned))

	DialogBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	ConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Confirm)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1)

	InputLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.StatusBarText)).
		Background(lipgloss.Color(colors.StatusBarBg))
}
