package session

import "errors"

// Session errors
var (
	// ErrEmptySession indicates a session was requested with no entities
	ErrEmptySession = errors.New("session requires at least one entity")

	// ErrNoExporter indicates a session was requested without an exporter
	ErrNoExporter = errors.New("session requires an exporter")

	// ErrSessionEnded indicates an action was attempted after Quit
	ErrSessionEnded = errors.New("session has ended")

	// ErrAwaitingConfirmation indicates an action was attempted while the
	// end-of-list prompt is open; only Continue or Quit are accepted
	ErrAwaitingConfirmation = errors.New("waiting for continue-or-quit confirmation")
)
