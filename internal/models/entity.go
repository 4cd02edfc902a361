package models

// Entity is a single named row of the loaded roster (a race competitor).
// Entities are addressed by position; duplicate names are legal.
type Entity struct {
	Name string

	// Reference is an informational value read alongside the name, such as
	// a pre-auction estimate. It is never written back. Empty means absent.
	Reference string
}

// HasReference reports whether a reference value was loaded for the entity.
func (e Entity) HasReference() bool {
	return e.Reference != ""
}
