package core

import (
	"cmp"
	"slices"

	"github.com/huangsam/scorecard/schema"
)

// RankDeltas keeps the deltas of one kind, sorts them by magnitude in descending
// order with category name as tie-breaker, and returns the top 'limit'.
func RankDeltas(deltas []schema.CategoryDelta, kind schema.DeltaKind, limit int) []schema.CategoryDelta {
	ranked := make([]schema.CategoryDelta, 0, len(deltas))
	for _, d := range deltas {
		if d.Kind == kind {
			ranked = append(ranked, d)
		}
	}
	slices.SortStableFunc(ranked, func(a, b schema.CategoryDelta) int {
		return cmp.Or(
			cmp.Compare(b.Magnitude, a.Magnitude),
			cmp.Compare(a.Category, b.Category),
		)
	})
	if limit >= 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// Insights returns the top n improvements and declines of the session.
// A non-positive n falls back to the default of 3.
func Insights(s *Session, n int) schema.InsightsResult {
	if n <= 0 {
		n = schema.DefaultInsightLimit
	}
	deltas, shared := Deltas(s)
	return schema.InsightsResult{
		Improvements: RankDeltas(deltas, schema.Improvement, n),
		Declines:     RankDeltas(deltas, schema.Decline, n),
		Shared:       shared,
	}
}
