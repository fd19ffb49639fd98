package schema

// CategoryAverage is the mean score of one non-empty category in a phase.
type CategoryAverage struct {
	Phase      Phase   `json:"phase"`
	Category   string  `json:"category"`
	Metrics    int     `json:"metrics"`
	Scored     int     `json:"scored"`
	Average    float64 `json:"average"`    // 0..5
	Percentage float64 `json:"percentage"` // 0..100
}

// PhaseSummary holds the totals for one phase.
type PhaseSummary struct {
	Phase      Phase             `json:"phase"`
	Total      int               `json:"total"`
	Max        int               `json:"max"`
	Percentage float64           `json:"percentage"`
	Categories []CategoryAverage `json:"categories"`
}

// Summary holds both phase summaries of a session.
type Summary struct {
	Campaign CampaignInfo `json:"campaign"`
	Pre      PhaseSummary `json:"pre"`
	Post     PhaseSummary `json:"post"`
}

// ForPhase returns the summary for the given phase.
func (s Summary) ForPhase(p Phase) PhaseSummary {
	if p == PostPhase {
		return s.Post
	}
	return s.Pre
}
