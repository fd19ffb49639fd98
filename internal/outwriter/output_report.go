package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/olekukonko/tablewriter"
)

// WriteReport outputs the report rows, dispatching based on the output format configured.
// The xlsx format writes to the configured file, or to a timestamped file name in the
// working directory.
func WriteReport(rows []schema.ReportRow, cfg *contract.Config, now time.Time) error {
	switch cfg.Output {
	case schema.XLSXOut:
		path := cfg.OutputFile
		if path == "" {
			path = schema.ReportFileName(now)
		}
		if err := SaveXLSX(path, rows); err != nil {
			return fmt.Errorf("error writing xlsx output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote report to %s\n", path)
		return nil
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, reportCells(rows))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, rows)
		}, "Wrote CSV")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, rows, cfg)
		}, "Wrote table")
	default:
		return fmt.Errorf("%w: report cannot be written as %s", ErrUnsupportedOutput, cfg.Output)
	}
}

// reportCells returns the rows as plain string slices.
func reportCells(rows []schema.ReportRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Strings())
	}
	return out
}

// writeReportCSV writes the rows as they appear in the spreadsheet, without an extra header.
func writeReportCSV(w io.Writer, rows []schema.ReportRow) error {
	return writeCSVWithHeader(w, nil, func(cw *csv.Writer) error {
		for _, r := range rows {
			if err := cw.Write(r.Strings()); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeReportTable renders each report section as its own table.
func writeReportTable(w io.Writer, rows []schema.ReportRow, cfg *contract.Config) error {
	maxWidth := GetMaxTextWidth(cfg, 45)

	var (
		table *tablewriter.Table
		data  [][]string
	)
	flush := func() error {
		if table == nil {
			return nil
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		_ = table.Close()
		table, data = nil, nil
		return nil
	}

	for _, r := range rows {
		switch r.Kind {
		case schema.TitleRow:
			if err := flush(); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "\n%s\n", r.Cells[0]); err != nil {
				return err
			}
			table = tablewriter.NewWriter(w)
		case schema.HeaderRow:
			if table != nil {
				table.Header(r.Strings())
			}
		case schema.BlankRow:
			continue
		case schema.FieldRow, schema.SummaryRow:
			data = append(data, []string{r.Cells[0], r.Cells[1]})
		default:
			data = append(data, []string{
				r.Cells[0],
				contract.TruncateText(r.Cells[1], maxWidth),
				r.Cells[2],
				contract.TruncateText(r.Cells[3], maxWidth),
			})
		}
	}
	return flush()
}
