package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/parquet"
	"github.com/huangsam/scorecard/schema"
)

// WriteExport outputs one record per catalog metric, dispatching based on the output format configured.
// Parquet is the default for exports and always needs an output file.
func WriteExport(records []parquet.ScoreRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("%w: %s", ErrOutputFileRequired, cfg.Output)
		}
		if err := parquet.WriteScoreRecordsParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		return nil
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExportCSV(w, records)
		}, "Wrote CSV")
	default:
		return fmt.Errorf("%w: export cannot be written as %s", ErrUnsupportedOutput, cfg.Output)
	}
}

func writeExportCSV(w io.Writer, records []parquet.ScoreRecord) error {
	header := []string{"campaign_name", "client_name", "phase", "category", "metric", "score", "scored", "comment", "exported_at"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range records {
			row := []string{
				r.CampaignName,
				deref(r.ClientName),
				r.Phase,
				r.Category,
				r.Metric,
				strconv.Itoa(int(r.Score)),
				strconv.FormatBool(r.Scored),
				deref(r.Comment),
				r.ExportedAt.Format("2006-01-02T15:04:05Z07:00"),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
