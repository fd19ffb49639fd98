package schema

// Custom string types for type safety.
type (
	// Phase represents the evaluation stage of a campaign.
	Phase string

	// OutputMode represents the format of the output.
	OutputMode string

	// CampaignType represents the kind of campaign being scored.
	CampaignType string

	// DeltaKind represents the direction of a pre-to-post change.
	DeltaKind string

	// RowKind represents the role of a row in the exported report.
	RowKind string
)

// Score is a single checklist score. Only ScoreNone, ScorePartial and ScoreFull are valid.
type Score int

// All phases supported.
const (
	PrePhase  Phase = "pre"
	PostPhase Phase = "post"
)

// All score values supported.
const (
	ScoreNone    Score = 0
	ScorePartial Score = 3
	ScoreFull    Score = 5

	// MaxScore is the highest score a single metric can receive.
	MaxScore = int(ScoreFull)
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// All campaign types supported.
const (
	StandardCampaign   CampaignType = "standard" // default
	InfluencerCampaign CampaignType = "influencer"
	TikTokCampaign     CampaignType = "tiktok"
)

// All delta kinds supported.
const (
	Improvement DeltaKind = "improvement"
	Decline     DeltaKind = "decline"
)

// All report row kinds.
const (
	TitleRow   RowKind = "title"
	FieldRow   RowKind = "field"
	HeaderRow  RowKind = "header"
	MetricRow  RowKind = "metric"
	BlankRow   RowKind = "blank"
	SummaryRow RowKind = "summary"
)

// DefaultInsightLimit is how many improvements and declines are surfaced by default.
const DefaultInsightLimit = 3

// AllPhases lists phases in report order.
var AllPhases = []Phase{PrePhase, PostPhase}

// AllScores lists valid scores in ascending order.
var AllScores = []Score{ScoreNone, ScorePartial, ScoreFull}

// ValidPhases lists all valid phases.
var ValidPhases = map[Phase]struct{}{
	PrePhase:  {},
	PostPhase: {},
}

// ValidScores lists all valid score values.
var ValidScores = map[Score]struct{}{
	ScoreNone:    {},
	ScorePartial: {},
	ScoreFull:    {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// ValidCampaignTypes lists all valid campaign types.
var ValidCampaignTypes = map[CampaignType]struct{}{
	StandardCampaign:   {},
	InfluencerCampaign: {},
	TikTokCampaign:     {},
}
