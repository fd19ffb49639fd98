package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/scorecard/schema"
)

// ErrMalformedReport is returned when report rows cannot be read back.
var ErrMalformedReport = errors.New("malformed report")

// Campaign field labels in report order.
const (
	fieldCampaignName = "Campaign Name"
	fieldCampaignDate = "Campaign Date"
	fieldStartDate    = "Start Date"
	fieldEndDate      = "End Date"
	fieldClientName   = "Client Name"
	fieldCountry      = "Country"
	fieldCities       = "Cities"
)

func row(kind schema.RowKind, cells ...string) schema.ReportRow {
	r := schema.ReportRow{Kind: kind}
	copy(r.Cells[:], cells)
	return r
}

// BuildReport lays out the exported spreadsheet: campaign details, the pre and post
// tables in catalog order, and the score summary.
func BuildReport(info schema.CampaignInfo, pre, post *Catalog, s *Session, summary schema.Summary) []schema.ReportRow {
	rows := []schema.ReportRow{
		row(schema.TitleRow, schema.CampaignInfoTitle),
		row(schema.FieldRow, fieldCampaignName, info.Name),
		row(schema.FieldRow, fieldCampaignDate, schema.FormatDate(info.CampaignDate)),
		row(schema.FieldRow, fieldStartDate, schema.FormatDate(info.StartDate)),
		row(schema.FieldRow, fieldEndDate, schema.FormatDate(info.EndDate)),
		row(schema.FieldRow, fieldClientName, info.ClientName),
		row(schema.FieldRow, fieldCountry, info.Country),
		row(schema.FieldRow, fieldCities, schema.JoinCities(info.Cities)),
		row(schema.BlankRow),
	}

	rows = append(rows, row(schema.TitleRow, schema.PreTableTitle))
	rows = appendMetricTable(rows, schema.PrePhase, pre, s)

	rows = append(rows, row(schema.BlankRow), row(schema.TitleRow, schema.PostTableTitle))
	rows = appendMetricTable(rows, schema.PostPhase, post, s)

	return append(rows,
		row(schema.BlankRow),
		row(schema.TitleRow, schema.SummaryTitle),
		row(schema.SummaryRow, schema.PreScoreLabel, schema.FormatPercent(summary.Pre.Percentage)),
		row(schema.SummaryRow, schema.PostScoreLabel, schema.FormatPercent(summary.Post.Percentage)),
	)
}

func appendMetricTable(rows []schema.ReportRow, phase schema.Phase, c *Catalog, s *Session) []schema.ReportRow {
	rows = append(rows, schema.ReportRow{Kind: schema.HeaderRow, Cells: schema.ReportHeader})
	for _, cat := range c.Categories() {
		for _, m := range cat.Metrics {
			key := schema.NewMetricKey(phase, cat.Name, m)
			score, _ := s.Score(key)
			rows = append(rows, row(schema.MetricRow, cat.Name, m, strconv.Itoa(int(score)), s.Comment(key)))
		}
	}
	return rows
}

// SessionReport builds the report of a session from its own campaign and catalogs.
func SessionReport(s *Session) []schema.ReportRow {
	cats := s.Catalogs()
	return BuildReport(s.Campaign(), cats.Pre, cats.Post, s, Summarize(s))
}

// ParsedReport is the content recovered from report rows.
type ParsedReport struct {
	Campaign schema.CampaignInfo
	Scores   []schema.ScoreEntry
	Comments []schema.CommentEntry
	PrePct   string
	PostPct  string
}

// ParseReport reads report rows back into campaign details, scores and comments.
// Rows may be shorter than four cells, as spreadsheet readers drop trailing blanks.
func ParseReport(rows [][]string) (ParsedReport, error) {
	var (
		out     ParsedReport
		section string
		phase   schema.Phase
	)
	for i, raw := range rows {
		var cells [schema.ReportWidth]string
		copy(cells[:], raw)
		first := strings.TrimSpace(cells[0])

		switch first {
		case schema.CampaignInfoTitle, schema.SummaryTitle:
			section, phase = first, ""
			continue
		case schema.PreTableTitle:
			section, phase = first, schema.PrePhase
			continue
		case schema.PostTableTitle:
			section, phase = first, schema.PostPhase
			continue
		case "":
			continue
		}

		switch {
		case section == schema.CampaignInfoTitle:
			if err := parseCampaignField(&out.Campaign, first, cells[1]); err != nil {
				return ParsedReport{}, fmt.Errorf("%w: row %d: %v", ErrMalformedReport, i+1, err)
			}
		case phase != "":
			if cells == schema.ReportHeader {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(cells[2]))
			if err != nil {
				return ParsedReport{}, fmt.Errorf("%w: row %d: score '%s' is not a number", ErrMalformedReport, i+1, cells[2])
			}
			score, err := ParseScore(n)
			if err != nil {
				return ParsedReport{}, fmt.Errorf("row %d: %w", i+1, err)
			}
			key := schema.NewMetricKey(phase, cells[0], cells[1])
			out.Scores = append(out.Scores, schema.ScoreEntry{MetricKey: key, Score: score})
			if cells[3] != "" {
				out.Comments = append(out.Comments, schema.CommentEntry{MetricKey: key, Comment: cells[3]})
			}
		case section == schema.SummaryTitle:
			switch first {
			case schema.PreScoreLabel:
				out.PrePct = cells[1]
			case schema.PostScoreLabel:
				out.PostPct = cells[1]
			}
		default:
			return ParsedReport{}, fmt.Errorf("%w: row %d outside of any section", ErrMalformedReport, i+1)
		}
	}
	if err := ValidateCampaign(&out.Campaign); err != nil {
		return ParsedReport{}, err
	}
	return out, nil
}

func parseCampaignField(info *schema.CampaignInfo, label, value string) error {
	var err error
	switch label {
	case fieldCampaignName:
		info.Name = value
	case fieldCampaignDate:
		info.CampaignDate, err = schema.ParseDate(value)
	case fieldStartDate:
		info.StartDate, err = schema.ParseDate(value)
	case fieldEndDate:
		info.EndDate, err = schema.ParseDate(value)
	case fieldClientName:
		info.ClientName = value
	case fieldCountry:
		info.Country = value
	case fieldCities:
		info.Cities = schema.SplitCities(value)
	default:
		return fmt.Errorf("unknown campaign field '%s'", label)
	}
	return err
}

// ApplyReport loads parsed report content into a session. Campaign details replace
// the session's, then scores and comments are recorded one at a time.
func ApplyReport(s *Session, rep ParsedReport) error {
	info := rep.Campaign
	info.Type = s.Campaign().Type
	if ct := impliedCampaignType(s.base, rep.Scores); ct != "" {
		info.Type = ct
	}
	if err := s.SetCampaign(info); err != nil {
		return err
	}
	for _, e := range rep.Scores {
		if err := s.SetScore(e.MetricKey, int(e.Score)); err != nil {
			return err
		}
	}
	for _, e := range rep.Comments {
		if err := s.SetComment(e.MetricKey, e.Comment); err != nil {
			return err
		}
	}
	return nil
}

// impliedCampaignType returns the campaign type required by any scored category, if one is.
// Reports do not carry the type, so a scored TikTok category implies a tiktok campaign.
func impliedCampaignType(base CatalogSet, scores []schema.ScoreEntry) schema.CampaignType {
	for _, e := range scores {
		c := base.ForPhase(e.Phase)
		if c == nil {
			continue
		}
		if cat, ok := c.Category(e.Category); ok && cat.RequiresCampaignType != "" {
			return cat.RequiresCampaignType
		}
	}
	return ""
}
