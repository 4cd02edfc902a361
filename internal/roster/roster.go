// Package roster loads the ordered list of entities from a spreadsheet or a
// delimited text file.
package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/asta/internal/models"
)

// Options controls how input files are interpreted.
type Options struct {
	// Spreadsheet columns, by letter.
	SurnameColumn   string
	FirstNameColumn string
	ValueColumn     string

	// HeaderRows is the number of leading spreadsheet rows to skip.
	HeaderRows int

	// Header is the export header. A delimited file whose first record
	// matches it is treated as a previously exported results file and the
	// record is skipped.
	Header []string
}

// DefaultOptions returns the column layout of the auction roster
// spreadsheet: surname in B, first name in C, estimate in G.
func DefaultOptions() Options {
	return Options{
		SurnameColumn:   "B",
		FirstNameColumn: "C",
		ValueColumn:     "G",
		HeaderRows:      1,
		Header:          []string{"Rider", "Team", "Price"},
	}
}

// CheckExists fails with ErrFileNotFound when nothing exists at path
func CheckExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return nil
}

// Load reads the entity sequence from path. The format is chosen by file
// extension. It fails with ErrFileNotFound, ErrUnsupportedFormat or
// ErrEmptyResult; a zero-length result is never returned without an error.
func Load(path string, opts Options) ([]models.Entity, error) {
	if err := CheckExists(path); err != nil {
		return nil, err
	}

	var (
		entities []models.Entity
		err      error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		entities, err = readSpreadsheet(path, opts)
	case ".csv":
		entities, err = readDelimited(path, ',', opts)
	case ".tsv":
		entities, err = readDelimited(path, '\t', opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	if len(entities) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResult, path)
	}
	return entities, nil
}
