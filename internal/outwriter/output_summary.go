package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/parquet"
	"github.com/huangsam/scorecard/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// ErrOutputFileRequired is returned for binary formats that cannot go to stdout.
var ErrOutputFileRequired = errors.New("output file is required for this format")

// WriteSummary outputs the phase summaries, dispatching based on the output format configured.
func WriteSummary(summary schema.Summary, cfg *contract.Config) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, summary, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("%w: %s", ErrOutputFileRequired, cfg.Output)
		}
		if err := parquet.WriteCategoryRecordsParquet(CategoryRecords(summary, time.Now()), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		return nil
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, summary, cfg, fmtFloat)
		}, "Wrote table")
	default:
		return fmt.Errorf("%w: summary cannot be written as %s", ErrUnsupportedOutput, cfg.Output)
	}
}

// CategoryRecords converts the category averages of both phases into Parquet rows.
func CategoryRecords(summary schema.Summary, exportedAt time.Time) []parquet.CategoryRecord {
	var out []parquet.CategoryRecord
	for _, phase := range schema.AllPhases {
		for _, c := range summary.ForPhase(phase).Categories {
			out = append(out, parquet.CategoryRecord{
				CampaignName: summary.Campaign.Name,
				Phase:        string(phase),
				Category:     c.Category,
				Metrics:      int32(c.Metrics),
				Scored:       int32(c.Scored),
				Average:      c.Average,
				Percentage:   c.Percentage,
				ExportedAt:   exportedAt,
			})
		}
	}
	return out
}

func writeSummaryCSV(w io.Writer, summary schema.Summary, fmtFloat func(float64) string) error {
	header := []string{"phase", "category", "metrics", "scored", "average", "percentage", "label"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, phase := range schema.AllPhases {
			ps := summary.ForPhase(phase)
			for _, c := range ps.Categories {
				row := []string{
					string(phase),
					c.Category,
					strconv.Itoa(c.Metrics),
					strconv.Itoa(c.Scored),
					fmtFloat(c.Average),
					fmtFloat(c.Percentage),
					schema.GetPlainLabel(c.Percentage),
				}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			// Phase total row
			total := []string{
				string(phase),
				"TOTAL",
				strconv.Itoa(ps.Max/schema.MaxScore),
				strconv.Itoa(ps.Total),
				"",
				fmtFloat(ps.Percentage),
				schema.GetPlainLabel(ps.Percentage),
			}
			if err := cw.Write(total); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeSummaryTable(w io.Writer, summary schema.Summary, cfg *contract.Config, fmtFloat func(float64) string) error {
	if name := summary.Campaign.Name; name != "" {
		if _, err := fmt.Fprintf(w, "Campaign: %s\n", name); err != nil {
			return err
		}
	}

	for _, phase := range schema.AllPhases {
		ps := summary.ForPhase(phase)
		if _, err := fmt.Fprintf(w, "\n%s\n", phaseTitle(phase)); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Category", "Scored", "Average", "Percent", "Label"})
		table.Configure(func(c *tablewriter.Config) {
			c.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, c := range ps.Categories {
			data = append(data, []string{
				c.Category,
				strconv.Itoa(c.Scored) + "/" + strconv.Itoa(c.Metrics),
				fmtFloat(c.Average),
				fmtFloat(c.Percentage) + "%",
				formatLabel(c.Percentage, cfg.UseColors),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		_ = table.Close()

		if _, err := fmt.Fprintf(w, "Total: %d / %d (%s)\n", ps.Total, ps.Max, schema.FormatPercent(ps.Percentage)); err != nil {
			return err
		}
	}
	return nil
}

// phaseTitle returns the heading used for a phase in text output.
func phaseTitle(phase schema.Phase) string {
	if phase == schema.PostPhase {
		return schema.PostTableTitle
	}
	return schema.PreTableTitle
}
