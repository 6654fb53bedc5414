package extract

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/xuri/excelize/v2"
)

func extractCSV(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	// Review exports often carry ragged rows; tolerate them.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &FileReadError{Cause: err}
	}
	return reviewColumnValues(rows)
}

func extractXLSX(data []byte) ([]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &FileReadError{Cause: err}
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, &MissingColumnError{Column: ReviewColumn}
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, &FileReadError{Cause: err}
	}
	return reviewColumnValues(rows)
}

// reviewColumnValues pulls the ReviewColumn cells out of header+data
// rows, preserving row order and dropping empty cells.
func reviewColumnValues(rows [][]string) ([]string, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnError{Column: ReviewColumn}
	}

	column := -1
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == ReviewColumn {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, &MissingColumnError{Column: ReviewColumn}
	}

	var units []string
	for _, row := range rows[1:] {
		if column >= len(row) {
			continue
		}
		if value := strings.TrimSpace(row[column]); value != "" {
			units = append(units, value)
		}
	}
	return units, nil
}
