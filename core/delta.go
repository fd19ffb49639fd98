package core

import "github.com/huangsam/scorecard/schema"

// classifyDelta decides the direction and size of a pre-to-post change.
// Both phases at 0% yields no delta. A 0% baseline with any post score is an
// improvement worth the full post percentage.
func classifyDelta(prePct, postPct float64) (schema.DeltaKind, float64, bool) {
	if prePct == 0 && postPct == 0 {
		return "", 0, false
	}
	if prePct == 0 && postPct > 0 {
		return schema.Improvement, postPct, true
	}
	diff := postPct - prePct
	switch {
	case diff > 0:
		return schema.Improvement, diff, true
	case diff < 0:
		return schema.Decline, -diff, true
	default:
		return "", 0, false
	}
}

// Delta compares a category present in both the pre and post catalogs.
// The bool is false when the category is missing or empty on either side, or did not change.
func Delta(s *Session, category string) (schema.CategoryDelta, bool) {
	prePct, ok := CategoryPercentage(s, schema.PrePhase, category)
	if !ok {
		return schema.CategoryDelta{}, false
	}
	postPct, ok := CategoryPercentage(s, schema.PostPhase, category)
	if !ok {
		return schema.CategoryDelta{}, false
	}
	kind, mag, ok := classifyDelta(prePct, postPct)
	if !ok {
		return schema.CategoryDelta{}, false
	}
	return schema.CategoryDelta{
		Category:  category,
		PrePct:    prePct,
		PostPct:   postPct,
		Kind:      kind,
		Magnitude: mag,
	}, true
}

// Deltas returns every non-zero delta, following pre catalog order.
// The second result counts the categories scored in both phases.
func Deltas(s *Session) ([]schema.CategoryDelta, int) {
	var (
		out    []schema.CategoryDelta
		shared int
	)
	post := s.Catalog(schema.PostPhase)
	for _, cat := range s.Catalog(schema.PrePhase).ScoredCategories() {
		if pc, ok := post.Category(cat.Name); !ok || len(pc.Metrics) == 0 {
			continue
		}
		shared++
		if d, ok := Delta(s, cat.Name); ok {
			out = append(out, d)
		}
	}
	return out, shared
}
