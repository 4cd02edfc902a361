package roster

import "errors"

// Loading errors. All of them are fatal at startup.
var (
	// ErrUnsupportedFormat indicates the input file extension is not recognized
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrFileNotFound indicates the input path does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrEmptyResult indicates the input contained no entities
	ErrEmptyResult = errors.New("no entities found in file")

	// ErrInvalidColumn indicates a configured spreadsheet column is not a column letter
	ErrInvalidColumn = errors.New("invalid spreadsheet column")
)
