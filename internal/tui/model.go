// Package tui renders a data-entry session and turns key presses into
// session controller actions. All session state lives in the controller;
// the model only holds presentation state.
package tui

import (
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/asta/internal/config"
	"github.com/thenoetrevino/asta/internal/session"
	"github.com/thenoetrevino/asta/internal/tui/components"
	"github.com/thenoetrevino/asta/internal/tui/forms"
	"github.com/thenoetrevino/asta/internal/tui/state"
)

const progressWidth = 40

// Model represents the application state for the TUI
type Model struct {
	Session       *session.Controller
	Config        *config.Config
	UIState       *state.UIState
	Notifications *state.NotificationState

	// Form is the open assignment dialog, nil in other modes
	Form *forms.AssignForm

	source   string
	noun     string
	keys     keyMap
	help     help.Model
	progress progress.Model
	helpText string
}

// New creates the model for controller. source names the input file in the
// status bar.
func New(controller *session.Controller, cfg *config.Config, source string) Model {
	components.InitStyles(cfg.ColorScheme)

	keys := newKeyMap(cfg.KeyMappings)
	noun := cfg.Output.Header[0]

	m := Model{
		Session:       controller,
		Config:        cfg,
		UIState:       state.NewUIState(),
		Notifications: state.NewNotificationState(),
		source:        source,
		noun:          noun,
		keys:          keys,
		help:          help.New(),
		progress:      progress.New(progress.WithWidth(progressWidth), progress.WithoutPercentage()),
		helpText:      renderHelp(helpMarkdown(keys, noun), helpWidth),
	}

	controller.Subscribe(notifier(m.Notifications))
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// notifier turns session events into notifications
func notifier(notes *state.NotificationState) session.Observer {
	return session.ObserverFunc(func(e session.Event) {
		switch e.Kind {
		case session.EventAssigned:
			notes.Add(state.LevelInfo, fmt.Sprintf("%s → %s (%s)",
				e.Entity.Name, e.Assignment.Label, e.Assignment.Value.String()))
		case session.EventCleared:
			notes.Add(state.LevelWarning, e.Entity.Name+" left unassigned")
		case session.EventEnded:
			notes.Add(state.LevelInfo, "Results saved")
		}
	})
}

// report shows a failed action as an error notification
func (m *Model) report(err error) {
	if err != nil {
		m.Notifications.Add(state.LevelError, err.Error())
	}
}
