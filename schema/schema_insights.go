package schema

// CategoryDelta is the pre-to-post percentage-point change of a category present in both phases.
type CategoryDelta struct {
	Category  string    `json:"category"`
	PrePct    float64   `json:"pre_pct"`
	PostPct   float64   `json:"post_pct"`
	Kind      DeltaKind `json:"kind"`
	Magnitude float64   `json:"magnitude"` // always >= 0
}

// InsightsResult holds the ranked improvements and declines.
type InsightsResult struct {
	Improvements []CategoryDelta `json:"improvements"`
	Declines     []CategoryDelta `json:"declines"`
	Shared       int             `json:"shared_categories"` // categories present in both phases
}

// HasData reports whether any delta was found.
func (r InsightsResult) HasData() bool {
	return len(r.Improvements) > 0 || len(r.Declines) > 0
}
