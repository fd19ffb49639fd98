// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/parquet"
	"github.com/huangsam/scorecard/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCatalog prints the active catalogs using the configured output format.
func (ow *OutWriter) WriteCatalog(listing schema.CatalogListing, cfg *contract.Config) error {
	return WriteCatalog(listing, cfg)
}

// WriteSummary prints the phase summaries using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.Summary, cfg *contract.Config) error {
	return WriteSummary(summary, cfg)
}

// WriteInsights prints the ranked deltas using the configured output format.
func (ow *OutWriter) WriteInsights(result schema.InsightsResult, cfg *contract.Config) error {
	return WriteInsights(result, cfg)
}

// WriteReport writes the report rows using the configured output format.
func (ow *OutWriter) WriteReport(rows []schema.ReportRow, cfg *contract.Config) error {
	return WriteReport(rows, cfg, time.Now())
}

// WriteExport writes the metric score records using the configured output format.
func (ow *OutWriter) WriteExport(records []parquet.ScoreRecord, cfg *contract.Config) error {
	return WriteExport(records, cfg)
}
