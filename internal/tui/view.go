package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/asta/internal/session"
	"github.com/thenoetrevino/asta/internal/tui/components"
	"github.com/thenoetrevino/asta/internal/tui/layers"
	"github.com/thenoetrevino/asta/internal/tui/notifications"
	"github.com/thenoetrevino/asta/internal/tui/state"
	"github.com/thenoetrevino/asta/internal/tui/theme"
)

const maxPanelWidth = 60

// View renders the session with any open dialog layered on top.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{lipgloss.NewLayer(m.renderMain())}
	if overlay := layers.CreateCenteredLayer(m.renderOverlay(), m.UIState.Width(), m.UIState.Height()); overlay != nil {
		stack = append(stack, overlay)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// renderMain renders the entity panel, progress, status and key help
func (m Model) renderMain() string {
	width := m.UIState.Width()
	cursor := m.Session.Cursor()
	total := m.Session.Len()
	entity, assignment := m.Session.Current()

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Left:  " asta • " + m.source,
		Right: "press " + m.keys.Help.Help().Key + " for help ",
	})

	panel := components.RenderEntityPanel(components.EntityProps{
		Noun:     m.noun,
		Position: cursor,
		Total:    total,
		Entity:   entity,
		Width:    min(width-2, maxPanelWidth),
	})

	progressLine := lipgloss.JoinHorizontal(lipgloss.Center,
		m.progress.ViewAs(components.ProgressFraction(cursor, total)),
		" ",
		components.RenderProgressLabel(cursor, total),
	)

	rows := []string{
		statusBar,
		"",
		panel,
		"",
		progressLine,
		components.RenderStatus(assignment),
		"",
	}
	if n, ok := m.Notifications.Latest(); ok {
		rows = append(rows, notifications.RenderInlineFromState(n))
	} else {
		rows = append(rows, "")
	}
	rows = append(rows, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderOverlay renders the dialog for the current mode, or "" for none
func (m Model) renderOverlay() string {
	if m.Session.State() == session.AwaitingConfirmation {
		return components.RenderConfirmDialog(components.ConfirmDialogProps{
			Noun:    m.noun,
			QuitKey: m.keys.Quit.Help().Key,
		})
	}

	switch m.UIState.Mode() {
	case state.AssignMode:
		if m.Form == nil {
			return ""
		}
		entity, _ := m.Session.Current()
		return components.RenderAssignDialog(components.AssignDialogProps{
			EntityName: entity.Name,
			LabelTitle: m.Form.LabelTitle,
			LabelView:  m.Form.LabelView(),
			PriceTitle: m.Form.PriceTitle,
			PriceView:  m.Form.PriceView(),
		})
	case state.HelpMode:
		return components.HelpBoxStyle.Width(helpWidth + 4).Render(m.helpText)
	}
	return ""
}
