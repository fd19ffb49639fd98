package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// NoDataMessage is shown in place of an empty insight list.
const NoDataMessage = "no data"

// WriteInsights outputs the ranked deltas, dispatching based on the output format configured.
func WriteInsights(result schema.InsightsResult, cfg *contract.Config) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeInsightsCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeInsightsText(w, result, cfg, fmtFloat)
		}, "Wrote table")
	default:
		return fmt.Errorf("%w: insights cannot be written as %s", ErrUnsupportedOutput, cfg.Output)
	}
}

func writeInsightsCSV(w io.Writer, result schema.InsightsResult, fmtFloat func(float64) string) error {
	header := []string{"kind", "rank", "category", "pre_pct", "post_pct", "magnitude"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, list := range [][]schema.CategoryDelta{result.Improvements, result.Declines} {
			for i, d := range list {
				row := []string{
					string(d.Kind),
					strconv.Itoa(i + 1),
					d.Category,
					fmtFloat(d.PrePct),
					fmtFloat(d.PostPct),
					fmtFloat(d.Magnitude),
				}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
		return nil
	})
}

// writeInsightsText prints the improvements and declines as two tables.
func writeInsightsText(w io.Writer, result schema.InsightsResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	sections := []struct {
		title string
		list  []schema.CategoryDelta
	}{
		{"Top Improvements", result.Improvements},
		{"Areas Needing Attention", result.Declines},
	}
	for _, sec := range sections {
		if _, err := fmt.Fprintf(w, "%s\n", sec.title); err != nil {
			return err
		}
		if len(sec.list) == 0 {
			if _, err := fmt.Fprintf(w, "  %s\n\n", NoDataMessage); err != nil {
				return err
			}
			continue
		}
		if err := writeDeltaTable(w, sec.list, cfg, fmtFloat); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Compared %d categories scored in both phases\n", result.Shared)
	return err
}

func writeDeltaTable(w io.Writer, list []schema.CategoryDelta, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Rank", "Category", "Pre", "Post", "Delta"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, d := range list {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			d.Category,
			fmtFloat(d.PrePct) + "%",
			fmtFloat(d.PostPct) + "%",
			formatDelta(d, cfg.Precision, cfg.UseColors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
