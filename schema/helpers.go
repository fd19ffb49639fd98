package schema

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used in reports and session files.
const DateLayout = "2006-01-02"

// ReportFileLayout is the timestamp format embedded in exported file names.
const ReportFileLayout = "20060102_150405"

// XLSXContentType is the MIME type of exported spreadsheets.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LookupPhase normalizes a phase name. The bool is false for anything other than pre or post.
func LookupPhase(s string) (Phase, bool) {
	p := Phase(strings.ToLower(strings.TrimSpace(s)))
	_, ok := ValidPhases[p]
	return p, ok
}

// LookupScore converts an integer into a Score. The bool is false unless n is 0, 3 or 5.
func LookupScore(n int) (Score, bool) {
	s := Score(n)
	_, ok := ValidScores[s]
	return s, ok
}

// SplitCities splits a comma-separated city string into trimmed, non-empty names.
func SplitCities(s string) []string {
	var cities []string
	for part := range strings.SplitSeq(s, ",") {
		if c := strings.TrimSpace(part); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}

// JoinCities renders a city list the way the report shows it.
func JoinCities(cities []string) string {
	return strings.Join(cities, ", ")
}

// FormatPercent renders a percentage with one decimal place, e.g. "80.0%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate renders a date as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// ReportFileName returns the export file name for the given instant.
func ReportFileName(now time.Time) string {
	return "campaign_scorecard_" + now.Format(ReportFileLayout) + ".xlsx"
}
