package schema

// ReportWidth is the number of cells in every report row.
const ReportWidth = 4

// Report section titles and header cells.
const (
	CampaignInfoTitle = "Campaign Information"
	PreTableTitle     = "Pre-Campaign Scorecard"
	PostTableTitle    = "Post-Campaign Scorecard"
	SummaryTitle      = "Score Summary"
	PreScoreLabel     = "Pre-Campaign Score"
	PostScoreLabel    = "Post-Campaign Score"
)

// ReportSectionTitles are the first cells that open a report section.
// Category names must not collide with them.
var ReportSectionTitles = []string{CampaignInfoTitle, PreTableTitle, PostTableTitle, SummaryTitle}

// ReportHeader is the column header of the metric tables.
var ReportHeader = [ReportWidth]string{"Category", "Metric", "Score", "Comments"}

// ReportRow is one row of the exported spreadsheet.
type ReportRow struct {
	Kind  RowKind             `json:"kind"`
	Cells [ReportWidth]string `json:"cells"`
}

// Strings returns the row cells as a slice.
func (r ReportRow) Strings() []string {
	out := make([]string, ReportWidth)
	copy(out, r.Cells[:])
	return out
}
