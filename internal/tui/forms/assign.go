// Package forms holds the input dialogs of the TUI.
package forms

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// Field identifies an input of the assignment form
type Field int

const (
	LabelField Field = iota
	PriceField
)

// Result is what the form produced when it closed
type Result int

const (
	// Pending means the form is still open
	Pending Result = iota
	// Submitted means the operator confirmed the form
	Submitted
	// Cancelled means the operator dismissed the form
	Cancelled
)

// AssignForm collects a label and a price for one entity.
//
// Enter on the label moves to the price, unless the label means "skip", in
// which case the form submits at once. Enter on the price submits. Tab and
// shift+tab switch fields; esc cancels.
type AssignForm struct {
	LabelTitle string
	PriceTitle string

	label  textinput.Model
	price  textinput.Model
	focus  Field
	result Result
	isSkip func(string) bool
}

// NewAssignForm creates an empty form with the label focused.
// isSkip reports whether label input means "leave unassigned".
func NewAssignForm(labelTitle, priceTitle string, isSkip func(string) bool) *AssignForm {
	label := textinput.New()
	label.Placeholder = labelTitle + " name (empty to skip)"
	// no limit: labels and prices are stored exactly as typed
	label.CharLimit = 0

	price := textinput.New()
	price.Placeholder = priceTitle + " (e.g. 100)"
	price.CharLimit = 0

	if isSkip == nil {
		isSkip = func(s string) bool { return s == "" }
	}

	f := &AssignForm{
		LabelTitle: labelTitle,
		PriceTitle: priceTitle,
		label:      label,
		price:      price,
		isSkip:     isSkip,
	}
	return f
}

// Init focuses the label input
func (f *AssignForm) Init() tea.Cmd {
	return f.setFocus(LabelField)
}

// Update handles a message while the form is open
func (f *AssignForm) Update(msg tea.Msg) tea.Cmd {
	if f.result != Pending {
		return nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			f.result = Cancelled
			return nil
		case "enter":
			return f.handleEnter()
		case "tab", "shift+tab":
			if f.focus == LabelField {
				return f.setFocus(PriceField)
			}
			return f.setFocus(LabelField)
		}
	}

	var cmd tea.Cmd
	if f.focus == LabelField {
		f.label, cmd = f.label.Update(msg)
	} else {
		f.price, cmd = f.price.Update(msg)
	}
	return cmd
}

func (f *AssignForm) handleEnter() tea.Cmd {
	if f.focus == LabelField && !f.isSkip(f.label.Value()) {
		return f.setFocus(PriceField)
	}
	f.result = Submitted
	return nil
}

func (f *AssignForm) setFocus(field Field) tea.Cmd {
	f.focus = field
	if field == LabelField {
		f.price.Blur()
		return f.label.Focus()
	}
	f.label.Blur()
	return f.price.Focus()
}

// Focus returns the focused field
func (f *AssignForm) Focus() Field {
	return f.focus
}

// Result returns how the form closed, or Pending while it is open
func (f *AssignForm) Result() Result {
	return f.result
}

// Label returns the label input
func (f *AssignForm) Label() string {
	return f.label.Value()
}

// Price returns the price input
func (f *AssignForm) Price() string {
	return f.price.Value()
}

// LabelView renders the label input
func (f *AssignForm) LabelView() string {
	return f.label.View()
}

// PriceView renders the price input
func (f *AssignForm) PriceView() string {
	return f.price.View()
}
