package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/asta/internal/session"
	"github.com/thenoetrevino/asta/internal/tui/forms"
	"github.com/thenoetrevino/asta/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	}

	// cursor blink and other input messages
	if m.UIState.Mode() == state.AssignMode && m.Form != nil {
		return m, m.Form.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.Session.Ended() {
		return tea.Quit
	}
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.Session.State() == session.AwaitingConfirmation {
		return m.handleConfirm(msg)
	}

	switch m.UIState.Mode() {
	case state.AssignMode:
		return m.handleAssign(msg)
	case state.HelpMode:
		m.UIState.SetMode(state.NormalMode)
		return nil
	default:
		return m.handleNormal(msg)
	}
}

// handleNormal dispatches key events in NormalMode
func (m *Model) handleNormal(msg tea.KeyPressMsg) tea.Cmd {
	m.Notifications.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.UIState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.Prev):
		m.report(m.Session.MoveUp())
	case key.Matches(msg, m.keys.Next):
		m.report(m.Session.MoveDown())
	case key.Matches(msg, m.keys.Assign):
		return m.openAssign()
	}
	return nil
}

// handleAssign feeds the dialog and applies its result once it closes
func (m *Model) handleAssign(msg tea.KeyPressMsg) tea.Cmd {
	cmd := m.Form.Update(msg)

	switch m.Form.Result() {
	case forms.Submitted:
		label, price := m.Form.Label(), m.Form.Price()
		m.closeAssign()
		m.report(m.Session.Assign(label, price))
	case forms.Cancelled:
		m.closeAssign()
	}
	return cmd
}

// handleConfirm answers the end-of-list prompt: the quit key saves and
// exits, anything else resumes the session
func (m *Model) handleConfirm(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	m.Notifications.Clear()
	m.report(m.Session.Continue())
	return nil
}

func (m *Model) openAssign() tea.Cmd {
	m.Form = forms.NewAssignForm(m.Config.Output.Header[1], m.Config.Output.Header[2], m.Session.IsSkip)
	m.UIState.SetMode(state.AssignMode)
	return m.Form.Init()
}

func (m *Model) closeAssign() {
	m.Form = nil
	m.UIState.SetMode(state.NormalMode)
}

// quit ends the session, which exports the table, and stops the program.
// An export error is left on the controller for the caller to report.
func (m *Model) quit() tea.Cmd {
	m.report(m.Session.Quit())
	return tea.Quit
}
