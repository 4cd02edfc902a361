package export

import "errors"

// Export errors
var (
	// ErrNoRows indicates an export was requested for an empty table
	ErrNoRows = errors.New("no rows to export")

	// ErrNoFreeName indicates every candidate output name was taken
	ErrNoFreeName = errors.New("no unused output file name available")
)
