package core

import (
	"time"

	"github.com/huangsam/scorecard/internal/parquet"
	"github.com/huangsam/scorecard/schema"
)

// ScoreRecords flattens the active catalogs of a session into one record per metric.
// Unset metrics are exported with score 0 and Scored=false.
func ScoreRecords(s *Session, exportedAt time.Time) []parquet.ScoreRecord {
	info := s.Campaign()
	var client *string
	if info.ClientName != "" {
		client = &info.ClientName
	}

	var out []parquet.ScoreRecord
	s.eachMetric(func(key schema.MetricKey) {
		value, ok := s.Score(key)
		rec := parquet.ScoreRecord{
			CampaignName: info.Name,
			ClientName:   client,
			Phase:        string(key.Phase),
			Category:     key.Category,
			Metric:       key.Metric,
			Score:        int32(value),
			Scored:       ok,
			ExportedAt:   exportedAt,
		}
		if c := s.Comment(key); c != "" {
			rec.Comment = &c
		}
		out = append(out, rec)
	})
	return out
}
