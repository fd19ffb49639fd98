package schema

import "strconv"

// Readiness label values for a phase or category percentage.
const (
	ExcellentValue = "Excellent"
	GoodValue      = "Good"
	FairValue      = "Fair"
	PoorValue      = "Poor"
)

// scoreLabels holds the selector text of each valid score.
var scoreLabels = map[Score]string{
	ScoreNone:    "No/Poor",
	ScorePartial: "Partial/Medium",
	ScoreFull:    "Yes/Excellent",
}

// ScoreLabel returns the selector label of a score, e.g. "Partial/Medium".
func ScoreLabel(s Score) string {
	return scoreLabels[s]
}

// ScoreOption returns the full selector option, e.g. "3 - Partial/Medium".
func ScoreOption(s Score) string {
	return strconv.Itoa(int(s)) + " - " + ScoreLabel(s)
}

// GetPlainLabel returns a plain text label for a 0..100 percentage.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(pct float64) string {
	switch {
	case pct >= 80:
		return ExcellentValue
	case pct >= 60:
		return GoodValue
	case pct >= 40:
		return FairValue
	default:
		return PoorValue
	}
}
