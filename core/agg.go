package core

import "github.com/huangsam/scorecard/schema"

// categoryTotals sums the scores of one category. Unset metrics count as 0.
func categoryTotals(s *Session, phase schema.Phase, cat schema.Category) (sum, scored int) {
	for _, m := range cat.Metrics {
		if v, ok := s.Score(schema.NewMetricKey(phase, cat.Name, m)); ok {
			sum += int(v)
			scored++
		}
	}
	return sum, scored
}

// percentOf returns sum as a percentage of n metrics at full marks, or 0 when n is 0.
func percentOf(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) * 100 / float64(n*schema.MaxScore)
}

// CategoryAverage returns the mean score of a category in the active catalog of a phase.
// The bool is false for unknown or empty categories.
func CategoryAverage(s *Session, phase schema.Phase, category string) (float64, bool) {
	c := s.Catalog(phase)
	if c == nil {
		return 0, false
	}
	cat, ok := c.Category(category)
	if !ok || len(cat.Metrics) == 0 {
		return 0, false
	}
	sum, _ := categoryTotals(s, phase, cat)
	return float64(sum) / float64(len(cat.Metrics)), true
}

// CategoryPercentage is CategoryAverage on a 0..100 scale.
func CategoryPercentage(s *Session, phase schema.Phase, category string) (float64, bool) {
	c := s.Catalog(phase)
	if c == nil {
		return 0, false
	}
	cat, ok := c.Category(category)
	if !ok || len(cat.Metrics) == 0 {
		return 0, false
	}
	sum, _ := categoryTotals(s, phase, cat)
	return percentOf(sum, len(cat.Metrics)), true
}

// CategoryAverages returns an average for each non-empty category of a phase, in catalog order.
func CategoryAverages(s *Session, phase schema.Phase) []schema.CategoryAverage {
	c := s.Catalog(phase)
	if c == nil {
		return nil
	}
	var out []schema.CategoryAverage
	for _, cat := range c.ScoredCategories() {
		sum, scored := categoryTotals(s, phase, cat)
		out = append(out, schema.CategoryAverage{
			Phase:      phase,
			Category:   cat.Name,
			Metrics:    len(cat.Metrics),
			Scored:     scored,
			Average:    float64(sum) / float64(len(cat.Metrics)),
			Percentage: percentOf(sum, len(cat.Metrics)),
		})
	}
	return out
}

// PhaseTotal sums every recorded score of a phase.
func PhaseTotal(s *Session, phase schema.Phase) int {
	c := s.Catalog(phase)
	if c == nil {
		return 0
	}
	total := 0
	for _, cat := range c.ScoredCategories() {
		sum, _ := categoryTotals(s, phase, cat)
		total += sum
	}
	return total
}

// PhaseMax is the highest total a phase can reach.
func PhaseMax(s *Session, phase schema.Phase) int {
	c := s.Catalog(phase)
	if c == nil {
		return 0
	}
	return c.MetricCount() * schema.MaxScore
}

// PhasePercentage is PhaseTotal as a share of PhaseMax, or 0 when the phase has no metrics.
func PhasePercentage(s *Session, phase schema.Phase) float64 {
	c := s.Catalog(phase)
	if c == nil {
		return 0
	}
	return percentOf(PhaseTotal(s, phase), c.MetricCount())
}

// SummarizePhase gathers the totals and category averages of a phase.
func SummarizePhase(s *Session, phase schema.Phase) schema.PhaseSummary {
	return schema.PhaseSummary{
		Phase:      phase,
		Total:      PhaseTotal(s, phase),
		Max:        PhaseMax(s, phase),
		Percentage: PhasePercentage(s, phase),
		Categories: CategoryAverages(s, phase),
	}
}

// Summarize computes both phase summaries from the current session state.
func Summarize(s *Session) schema.Summary {
	return schema.Summary{
		Campaign: s.Campaign(),
		Pre:      SummarizePhase(s, schema.PrePhase),
		Post:     SummarizePhase(s, schema.PostPhase),
	}
}
