package roster

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thenoetrevino/asta/internal/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readDelimited reads one entity per record, taking the trimmed first field
// as the name. Records with an empty first field are skipped. Reference
// values are never produced for this format.
func readDelimited(path string, comma rune, opts Options) ([]models.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return parseDelimited(f, comma, opts.Header)
}

func parseDelimited(r io.Reader, comma rune, header []string) ([]models.Entity, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var entities []models.Entity
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse record: %w", err)
		}

		if first {
			first = false
			if isHeader(record, header) {
				continue
			}
		}

		if len(record) == 0 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		entities = append(entities, models.Entity{Name: name})
	}

	return entities, nil
}

// isHeader reports whether record starts with every field of header.
func isHeader(record, header []string) bool {
	if len(header) == 0 || len(record) < len(header) {
		return false
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), h) {
			return false
		}
	}
	return true
}
