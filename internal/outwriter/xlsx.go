package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/scorecard/schema"
	"github.com/xuri/excelize/v2"
)

// ReportSheet is the name of the single worksheet of an exported report.
const ReportSheet = "Sheet1"

// headerFillColor is the fill of the first report row.
const headerFillColor = "CCCCCC"

// newReportWorkbook lays the rows out on one sheet with a bold, grey first row.
func newReportWorkbook(rows []schema.ReportRow) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		values := make([]any, schema.ReportWidth)
		for j, v := range r.Cells {
			values[j] = v
		}
		// Scores are stored as numbers so spreadsheet formulas work on them.
		if r.Kind == schema.MetricRow {
			if n, err := strconv.Atoi(r.Cells[2]); err == nil {
				values[2] = n
			}
		}
		if err := f.SetSheetRow(ReportSheet, cell, &values); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if len(rows) > 0 {
		style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		})
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create header style: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(schema.ReportWidth, 1)
		if err := f.SetCellStyle(ReportSheet, "A1", last, style); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to style header row: %w", err)
		}
	}

	_ = f.SetColWidth(ReportSheet, "A", "B", 36)
	_ = f.SetColWidth(ReportSheet, "D", "D", 48)
	return f, nil
}

// WriteXLSX writes the report rows as an xlsx workbook to w.
func WriteXLSX(w io.Writer, rows []schema.ReportRow) error {
	f, err := newReportWorkbook(rows)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the report rows as an xlsx file. The file is closed before returning.
func SaveXLSX(path string, rows []schema.ReportRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create workbook file: %w", err)
	}
	if err := WriteXLSX(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ReadXLSX reads the raw rows of the first worksheet. Trailing empty cells are dropped.
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// ReadXLSXFile reads the raw rows of the first worksheet of an xlsx file.
func ReadXLSXFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadXLSX(file)
}
