// Package session implements the navigation-and-assignment state machine that
// drives a data-entry session. It has no knowledge of rendering; presentation
// layers read its state and subscribe to its events.
package session

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/asta/internal/models"
)

// State is the controller's position in its lifecycle.
type State int

const (
	// Active accepts navigation, assignment and quit.
	Active State = iota
	// AwaitingConfirmation follows an assignment of the last entity. Only
	// Continue and Quit are accepted.
	AwaitingConfirmation
	// Ended is terminal. The table has been handed to the exporter.
	Ended
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case AwaitingConfirmation:
		return "awaiting_confirmation"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Exporter receives the final table once, when the session ends. It returns
// where the table was written.
type Exporter interface {
	Export(rows []models.Row) (string, error)
}

// Controller owns the entity sequence, the cursor and the assignment table.
// It is not safe for concurrent use; actions are applied one at a time.
type Controller struct {
	entities    []models.Entity
	assignments []models.Assignment
	cursor      int
	state       State

	exporter   Exporter
	exportPath string
	exportErr  error

	observers []Observer
	skipWords map[string]struct{}
	logger    *slog.Logger
}

// New starts a session over entities with the cursor on the first entity and
// every assignment unassigned.
func New(entities []models.Entity, exporter Exporter, opts ...Option) (*Controller, error) {
	if len(entities) == 0 {
		return nil, ErrEmptySession
	}
	if exporter == nil {
		return nil, ErrNoExporter
	}

	c := &Controller{
		entities:    append([]models.Entity(nil), entities...),
		assignments: make([]models.Assignment, len(entities)),
		exporter:    exporter,
		logger:      slog.Default(),
	}
	WithSkipWords(DefaultSkipWords...)(c)

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Subscribe registers an observer for every subsequent state change.
func (c *Controller) Subscribe(o Observer) {
	if o != nil {
		c.observers = append(c.observers, o)
	}
}

// Len returns the number of entities.
func (c *Controller) Len() int {
	return len(c.entities)
}

// Cursor returns the index of the current entity.
func (c *Controller) Cursor() int {
	return c.cursor
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Ended reports whether Quit has been called.
func (c *Controller) Ended() bool {
	return c.state == Ended
}

// AtLast reports whether the cursor is on the last entity.
func (c *Controller) AtLast() bool {
	return c.cursor == len(c.entities)-1
}

// Entity returns the entity at index i.
func (c *Controller) Entity(i int) models.Entity {
	return c.entities[i]
}

// Assignment returns the assignment at index i.
func (c *Controller) Assignment(i int) models.Assignment {
	return c.assignments[i]
}

// Current returns the entity and assignment under the cursor.
func (c *Controller) Current() (models.Entity, models.Assignment) {
	return c.entities[c.cursor], c.assignments[c.cursor]
}

// AssignedCount returns how many entities carry a label.
func (c *Controller) AssignedCount() int {
	n := 0
	for _, a := range c.assignments {
		if a.IsAssigned() {
			n++
		}
	}
	return n
}

// Rows pairs every entity with its assignment, in entity order.
func (c *Controller) Rows() []models.Row {
	rows := make([]models.Row, len(c.entities))
	for i, e := range c.entities {
		rows[i] = models.NewRow(e, c.assignments[i])
	}
	return rows
}

// ExportPath returns where the exporter wrote the table, once ended.
func (c *Controller) ExportPath() string {
	return c.exportPath
}

// ExportErr returns the error from the exporter, if the export failed.
func (c *Controller) ExportErr() error {
	return c.exportErr
}

// IsSkip reports whether label input means "leave unassigned".
func (c *Controller) IsSkip(label string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(label))
	if trimmed == "" {
		return true
	}
	_, ok := c.skipWords[trimmed]
	return ok
}

// MoveUp moves to the previous entity. It does nothing on the first entity.
func (c *Controller) MoveUp() error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if c.cursor == 0 {
		return nil
	}
	c.cursor--
	c.logger.Debug("cursor moved", "cursor", c.cursor)
	c.notify(EventMoved, c.cursor)
	return nil
}

// MoveDown moves to the next entity. It does nothing on the last entity.
func (c *Controller) MoveDown() error {
	if err := c.checkActive(); err != nil {
		return err
	}
	if c.AtLast() {
		return nil
	}
	c.cursor++
	c.logger.Debug("cursor moved", "cursor", c.cursor)
	c.notify(EventMoved, c.cursor)
	return nil
}

// Assign records label and price for the current entity.
//
// An empty or skip-word label clears both fields and leaves the cursor in
// place. Otherwise the trimmed label is stored with the parsed price (see
// models.ParseValue) and the cursor advances; on the last entity the
// controller instead waits for Continue or Quit.
func (c *Controller) Assign(label, price string) error {
	if err := c.checkActive(); err != nil {
		return err
	}

	index := c.cursor
	if c.IsSkip(label) {
		c.assignments[index] = models.Assignment{}
		c.logger.Debug("assignment cleared", "index", index)
		c.notify(EventCleared, index)
		return nil
	}

	c.assignments[index] = models.Assignment{
		Label: strings.TrimSpace(label),
		Value: models.ParseValue(price),
	}
	c.logger.Debug("assignment recorded",
		"index", index,
		"label", c.assignments[index].Label,
		"value", c.assignments[index].Value.String(),
	)

	if c.AtLast() {
		c.state = AwaitingConfirmation
		c.notify(EventAssigned, index)
		c.notify(EventConfirmRequested, index)
		return nil
	}

	c.cursor++
	c.notify(EventAssigned, index)
	return nil
}

// Continue dismisses the end-of-list prompt and returns to Active.
// It does nothing when no prompt is open.
func (c *Controller) Continue() error {
	switch c.state {
	case Ended:
		return ErrSessionEnded
	case AwaitingConfirmation:
		c.state = Active
		c.notify(EventResumed, c.cursor)
	}
	return nil
}

// Quit ends the session and hands the full table to the exporter. The
// exporter is called exactly once; later calls return nil and do nothing.
func (c *Controller) Quit() error {
	if c.state == Ended {
		return nil
	}
	c.state = Ended

	path, err := c.exporter.Export(c.Rows())
	if err != nil {
		c.logger.Error("failed to export results", "error", err)
		c.exportErr = fmt.Errorf("failed to export results: %w", err)
		return c.exportErr
	}
	c.exportPath = path

	c.logger.Info("session ended",
		"path", path,
		"assigned", c.AssignedCount(),
		"total", len(c.entities),
	)
	c.notify(EventEnded, c.cursor)
	return nil
}

func (c *Controller) checkActive() error {
	switch c.state {
	case Ended:
		return ErrSessionEnded
	case AwaitingConfirmation:
		return ErrAwaitingConfirmation
	}
	return nil
}

func (c *Controller) notify(kind EventKind, index int) {
	if len(c.observers) == 0 {
		return
	}
	e := Event{
		Kind:       kind,
		Index:      index,
		Cursor:     c.cursor,
		Entity:     c.entities[index],
		Assignment: c.assignments[index],
	}
	for _, o := range c.observers {
		o.SessionChanged(e)
	}
}
