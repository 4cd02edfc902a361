package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/asta/internal/models"
)

// EntityProps describes the entity panel
type EntityProps struct {
	// Noun names the kind of entity, e.g. "Rider"
	Noun     string
	Position int // zero-based
	Total    int
	Entity   models.Entity
	Width    int
}

// RenderEntityPanel renders the counter, the entity name and its reference value
// Format:
//
//	Rider 3/120
//	Tadej POGACAR
//	Value: 45
func RenderEntityPanel(props EntityProps) string {
	lines := []string{
		CounterStyle.Render(fmt.Sprintf("%s %d/%d", props.Noun, props.Position+1, props.Total)),
		NameStyle.Render(props.Entity.Name),
	}
	if props.Entity.HasReference() {
		lines = append(lines, ReferenceStyle.Render("Value: "+props.Entity.Reference))
	}

	style := EntityPanelStyle
	if props.Width > 0 {
		style = style.Width(props.Width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// StatusText describes an assignment in plain text
func StatusText(a models.Assignment) string {
	if !a.IsAssigned() {
		return "Not yet assigned"
	}
	return fmt.Sprintf("Assigned: %s - %s", a.Label, a.Value.String())
}

// RenderStatus renders the assignment status line
func RenderStatus(a models.Assignment) string {
	if a.IsAssigned() {
		return AssignedStyle.Render(StatusText(a))
	}
	return UnassignedStyle.Render(StatusText(a))
}

// RenderProgressLabel renders the "n/total" counter next to the progress bar
func RenderProgressLabel(position, total int) string {
	return CounterStyle.Render(fmt.Sprintf("%d/%d", position+1, total))
}

// ProgressFraction returns how far through the list position is, in [0, 1]
func ProgressFraction(position, total int) float64 {
	if total <= 0 {
		return 0
	}
	return min(float64(position+1)/float64(total), 1)
}

