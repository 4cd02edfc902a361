package session

import "github.com/thenoetrevino/asta/internal/models"

// EventKind identifies a state change in the session.
type EventKind int

const (
	// EventMoved is emitted when the cursor changes through navigation.
	EventMoved EventKind = iota
	// EventAssigned is emitted when an assignment is recorded.
	EventAssigned
	// EventCleared is emitted when a skip clears an assignment.
	EventCleared
	// EventConfirmRequested is emitted after assigning the last entity.
	EventConfirmRequested
	// EventResumed is emitted when the operator continues past the prompt.
	EventResumed
	// EventEnded is emitted once, after the table has been exported.
	EventEnded
)

func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventAssigned:
		return "assigned"
	case EventCleared:
		return "cleared"
	case EventConfirmRequested:
		return "confirm_requested"
	case EventResumed:
		return "resumed"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event describes one state change. Index is the entity the change applied
// to; Cursor is the cursor position after the change.
type Event struct {
	Kind       EventKind
	Index      int
	Cursor     int
	Entity     models.Entity
	Assignment models.Assignment
}

// Observer is notified synchronously after every state change.
type Observer interface {
	SessionChanged(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// SessionChanged calls f(e).
func (f ObserverFunc) SessionChanged(e Event) {
	f(e)
}
