// Package parquet provides data structures and functions for exporting scorecard
// sessions to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
)

// ScoreRecord is one catalog metric of a session, scored or not.
type ScoreRecord struct {
	// CampaignName is the name of the campaign the session belongs to
	CampaignName string `parquet:"campaign_name,snappy"`

	// ClientName is the client of the campaign (nullable)
	ClientName *string `parquet:"client_name,optional,snappy"`

	// Phase is either pre or post
	Phase string `parquet:"phase,snappy,dict"`

	// Category is the checklist category within the phase
	Category string `parquet:"category,snappy,dict"`

	// Metric is the checklist item within the category
	Metric string `parquet:"metric,snappy"`

	// Score is 0, 3 or 5. Unset metrics are exported as 0 with Scored=false.
	Score int32 `parquet:"score,snappy"`

	// Scored tells an explicit 0 apart from an unset metric
	Scored bool `parquet:"scored"`

	// Comment is the free-text note of the metric (nullable)
	Comment *string `parquet:"comment,optional,snappy"`

	// ExportedAt is when the export was produced
	ExportedAt time.Time `parquet:"exported_at,snappy"`
}

// CategoryRecord is the average of one non-empty category in a phase.
type CategoryRecord struct {
	CampaignName string    `parquet:"campaign_name,snappy"`
	Phase        string    `parquet:"phase,snappy,dict"`
	Category     string    `parquet:"category,snappy,dict"`
	Metrics      int32     `parquet:"metrics,snappy"`
	Scored       int32     `parquet:"scored,snappy"`
	Average      float64   `parquet:"average,snappy"`
	Percentage   float64   `parquet:"percentage,snappy"`
	ExportedAt   time.Time `parquet:"exported_at,snappy"`
}

// writeRecords streams records of any supported type to w.
func writeRecords[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// writeRecordsFile creates outputPath and writes records to it.
func writeRecordsFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeRecords(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteScoreRecords writes score records as a Parquet stream.
func WriteScoreRecords(w io.Writer, data []ScoreRecord) error {
	return writeRecords(w, data)
}

// WriteScoreRecordsParquet writes score records to a Parquet file.
func WriteScoreRecordsParquet(data []ScoreRecord, outputPath string) error {
	return writeRecordsFile(data, outputPath)
}

// WriteCategoryRecords writes category records as a Parquet stream.
func WriteCategoryRecords(w io.Writer, data []CategoryRecord) error {
	return writeRecords(w, data)
}

// WriteCategoryRecordsParquet writes category records to a Parquet file.
func WriteCategoryRecordsParquet(data []CategoryRecord, outputPath string) error {
	return writeRecordsFile(data, outputPath)
}
