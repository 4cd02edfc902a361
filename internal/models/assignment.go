package models

// Assignment is the label and value recorded for one entity.
// The zero Assignment is unassigned.
type Assignment struct {
	Label string
	Value Value
}

// IsAssigned reports whether a label has been recorded.
func (a Assignment) IsAssigned() bool {
	return a.Label != ""
}

// Row is one exported record: an entity name paired with its assignment,
// already rendered as text. Unassigned fields are empty strings.
type Row struct {
	Name  string
	Label string
	Value string
}

// Fields returns the row as an ordered record.
func (r Row) Fields() []string {
	return []string{r.Name, r.Label, r.Value}
}

// NewRow pairs an entity with its assignment.
func NewRow(e Entity, a Assignment) Row {
	return Row{
		Name:  e.Name,
		Label: a.Label,
		Value: a.Value.String(),
	}
}
