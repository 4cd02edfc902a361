package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// DialogWidth is the content width of the assignment dialog
const DialogWidth = 44

// AssignDialogProps describes the assignment dialog
type AssignDialogProps struct {
	EntityName string
	LabelTitle string
	LabelView  string
	PriceTitle string
	PriceView  string
}

// RenderAssignDialog renders the label and price inputs for one entity
func RenderAssignDialog(props AssignDialogProps) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Assign"),
		NameStyle.Render(props.EntityName),
		"",
		InputLabelStyle.Render(props.LabelTitle+":"),
		props.LabelView,
		"",
		InputLabelStyle.Render(props.PriceTitle+":"),
		props.PriceView,
		"",
		CounterStyle.Render("enter: next/confirm • esc: cancel"),
	)
	return DialogBoxStyle.Width(DialogWidth).Render(content)
}

// ConfirmDialogProps describes the end-of-list prompt
type ConfirmDialogProps struct {
	Noun    string
	QuitKey string
}

// ConfirmMessage is the plain text of the end-of-list prompt
func ConfirmMessage(props ConfirmDialogProps) string {
	return fmt.Sprintf("Reached the last %s. Press %s to save and quit, or any other key to continue.",
		lowerNoun(props.Noun), props.QuitKey)
}

// RenderConfirmDialog renders the end-of-list prompt
func RenderConfirmDialog(props ConfirmDialogProps) string {
	return ConfirmBoxStyle.Width(DialogWidth).Render(wordwrap.String(ConfirmMessage(props), DialogWidth-6))
}

func lowerNoun(noun string) string {
	if noun == "" {
		return "entry"
	}
	return strings.ToLower(noun)
}
