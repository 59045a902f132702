package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoSheet is returned when the workbook contains no sheets.
	ErrNoSheet = errors.New("workbook contains no sheets")
	// ErrEmptySheet is returned when the first sheet has no header row.
	ErrEmptySheet = errors.New("sheet contains no header row")
)

// Sheet is the parsed form of an uploaded workbook's first sheet: the header
// row and the data rows, positionally aligned. Rows whose every cell is
// blank after trimming are dropped during parsing and never reach the
// materializer.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

// ParseSheet reads an xlsx workbook and extracts headers and data rows from
// its first sheet.
func ParseSheet(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	sheet := &Sheet{Headers: rows[0]}
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// isBlankRow reports whether every cell in a row is empty after trimming.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
