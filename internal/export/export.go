// Package export writes the final assignment table to a delimited text file
// whose name is derived from the input file, never overwriting an existing one.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thenoetrevino/asta/internal/models"
)

const (
	outputExt = ".csv"

	// maxCandidates bounds the numeric suffix search
	maxCandidates = 10000
)

// Options controls where and how results are written.
type Options struct {
	Dir    string
	Suffix string
	Header []string
}

// DefaultOptions writes "<input base>_auction_results.csv" to the working directory.
func DefaultOptions() Options {
	return Options{
		Dir:    ".",
		Suffix: "_auction_results",
		Header: []string{"Rider", "Team", "Price"},
	}
}

// Writer exports the assignment table for one input file.
type Writer struct {
	dir    string
	base   string
	header []string
}

// NewWriter returns a Writer whose output name derives from inputPath.
func NewWriter(inputPath string, opts Options) *Writer {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return &Writer{
		dir:    dir,
		base:   BaseName(inputPath, opts.Suffix),
		header: opts.Header,
	}
}

// BaseName strips the directory and extension from inputPath and appends suffix.
func BaseName(inputPath, suffix string) string {
	name := filepath.Base(inputPath)
	return strings.TrimSuffix(name, filepath.Ext(name)) + suffix
}

// Candidate returns the n-th output path: n == 0 is the plain derived name,
// later ones carry "_n".
func (w *Writer) Candidate(n int) string {
	name := w.base
	if n > 0 {
		name += "_" + strconv.Itoa(n)
	}
	return filepath.Join(w.dir, name+outputExt)
}

// Export encodes rows and writes them to the first unused candidate name.
// The file is created exclusively, so an existing file is never touched.
// It implements session.Exporter.
func (w *Writer) Export(rows []models.Row) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	data, err := w.encode(rows)
	if err != nil {
		return "", err
	}

	for n := 0; n < maxCandidates; n++ {
		path := w.Candidate(n)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}

		if _, err := file.Write(data); err != nil {
			_ = file.Close()
			_ = os.Remove(path)
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := file.Close(); err != nil {
			_ = os.Remove(path)
			return "", fmt.Errorf("failed to close %s: %w", path, err)
		}
		return path, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoFreeName, w.Candidate(0))
}

// encode renders the header and one record per row.
func (w *Writer) encode(rows []models.Row) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if len(w.header) > 0 {
		if err := cw.Write(w.header); err != nil {
			return nil, fmt.Errorf("failed to encode header: %w", err)
		}
	}
	for _, row := range rows {
		if err := cw.Write(row.Fields()); err != nil {
			return nil, fmt.Errorf("failed to encode row %q: %w", row.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}
	return buf.Bytes(), nil
}
