package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/olekukonko/tablewriter"
)

// WriteCatalog outputs the active catalogs, dispatching based on the output format configured.
func WriteCatalog(listing schema.CatalogListing, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, listing)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogCSV(w, listing)
		}, "Wrote CSV")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogTable(w, listing, cfg)
		}, "Wrote table")
	default:
		return fmt.Errorf("%w: catalog cannot be written as %s", ErrUnsupportedOutput, cfg.Output)
	}
}

// catalogRows flattens both phases into phase/category/index/metric rows.
// A category without metrics gets a single row with empty index and metric.
func catalogRows(listing schema.CatalogListing) [][]string {
	var rows [][]string
	add := func(phase schema.Phase, cats []schema.Category) {
		for _, cat := range cats {
			if len(cat.Metrics) == 0 {
				rows = append(rows, []string{string(phase), cat.Name, "", ""})
				continue
			}
			for i, m := range cat.Metrics {
				rows = append(rows, []string{string(phase), cat.Name, strconv.Itoa(i + 1), m})
			}
		}
	}
	add(schema.PrePhase, listing.Pre)
	add(schema.PostPhase, listing.Post)
	return rows
}

func writeCatalogCSV(w io.Writer, listing schema.CatalogListing) error {
	header := []string{"phase", "category", "index", "metric"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range catalogRows(listing) {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeCatalogTable(w io.Writer, listing schema.CatalogListing, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Phase", "Category", "#", "Metric"})

	maxWidth := GetMaxTextWidth(cfg, 40)
	data := catalogRows(listing)
	for _, row := range data {
		row[3] = contract.TruncateText(row[3], maxWidth)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	metrics := 0
	for _, row := range data {
		if row[3] != "" {
			metrics++
		}
	}
	if _, err := fmt.Fprintf(w, "Campaign type: %s. %d pre and %d post categories, %d metrics\n",
		listing.CampaignType, len(listing.Pre), len(listing.Post), metrics); err != nil {
		return err
	}

	options := make([]string, 0, len(schema.AllScores))
	for _, score := range schema.AllScores {
		options = append(options, schema.ScoreOption(score))
	}
	_, err := fmt.Fprintf(w, "Scores: %s\n", strings.Join(options, ", "))
	return err
}
