package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/asta/internal/models"
	"github.com/xuri/excelize/v2"
)

// EntityNames returns the names of entities, in order
func EntityNames(entities []models.Entity) []string {
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = e.Name
	}
	return names
}

// WriteWorkbook writes rows to the first sheet of a new xlsx file in the test's
// temp dir and returns its path. rows[0] lands on spreadsheet row 1, column A.
func WriteWorkbook(t *testing.T, name string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("Failed to compute cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cellName, value); err != nil {
				t.Fatalf("Failed to set cell %s: %v", cellName, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

// WriteDelimited writes records to a delimited text file in the test's temp dir
// and returns its path.
func WriteDelimited(t *testing.T, name string, comma rune, records [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	w.Comma = comma
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("Failed to write records: %v", err)
	}
	return path
}

// WriteFile writes raw content to a file in the test's temp dir and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
