package roster

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/asta/internal/models"
	"github.com/xuri/excelize/v2"
)

// columnIndex converts a column letter such as "B" to a zero-based index.
func columnIndex(name string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.TrimSpace(name))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidColumn, name, err)
	}
	return n - 1, nil
}

// cell returns the trimmed value at idx, or "" when the row is shorter.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// readSpreadsheet reads the active sheet of a workbook. Header rows are
// skipped unconditionally and rows with neither a surname nor a first name
// contribute nothing.
func readSpreadsheet(path string, opts Options) ([]models.Entity, error) {
	surnameIdx, err := columnIndex(opts.SurnameColumn)
	if err != nil {
		return nil, err
	}
	firstNameIdx, err := columnIndex(opts.FirstNameColumn)
	if err != nil {
		return nil, err
	}
	valueIdx := -1
	if opts.ValueColumn != "" {
		if valueIdx, err = columnIndex(opts.ValueColumn); err != nil {
			return nil, err
		}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	var entities []models.Entity
	rowNum := 0
	for rows.Next() {
		rowNum++
		row, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum, err)
		}
		if rowNum <= opts.HeaderRows {
			continue
		}

		surname := cell(row, surnameIdx)
		firstName := cell(row, firstNameIdx)
		if surname == "" && firstName == "" {
			continue
		}

		entity := models.Entity{
			Name: strings.TrimSpace(firstName + " " + surname),
		}
		if valueIdx >= 0 && valueIdx < len(row) && strings.TrimSpace(row[valueIdx]) != "" {
			entity.Reference = row[valueIdx]
		}
		entities = append(entities, entity)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate sheet %q: %w", sheet, err)
	}

	return entities, nil
}
