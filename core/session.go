package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/scorecard/schema"
)

// Errors returned for bad input at the session boundary.
var (
	ErrInvalidScore        = errors.New("invalid score")
	ErrUnknownMetric       = errors.New("unknown metric")
	ErrUnknownPhase        = errors.New("unknown phase")
	ErrInvalidDateRange    = errors.New("end date is before start date")
	ErrInvalidCampaignType = errors.New("invalid campaign type")
)

// Session holds the campaign details, scores and comments of one scorecard.
// It is not safe for concurrent use.
type Session struct {
	base     CatalogSet
	selected []string
	active   CatalogSet

	campaign schema.CampaignInfo
	scores   map[schema.MetricKey]schema.Score
	comments map[schema.MetricKey]string
}

// NewSession creates an empty session over the base catalogs narrowed to the selected categories.
// An empty selection keeps every category.
func NewSession(base CatalogSet, selected []string) *Session {
	s := &Session{
		base:     base,
		selected: slices.Clone(selected),
		campaign: schema.CampaignInfo{Type: schema.StandardCampaign},
		scores:   make(map[schema.MetricKey]schema.Score),
		comments: make(map[schema.MetricKey]string),
	}
	s.active = base.Filter(s.selected, s.campaign.Type)
	return s
}

// Catalogs returns the active, filtered catalogs.
func (s *Session) Catalogs() CatalogSet {
	return s.active
}

// Catalog returns the active catalog of a phase.
func (s *Session) Catalog(phase schema.Phase) *Catalog {
	return s.active.ForPhase(phase)
}

// Campaign returns the campaign details.
func (s *Session) Campaign() schema.CampaignInfo {
	info := s.campaign
	info.Cities = slices.Clone(s.campaign.Cities)
	return info
}

// SetCampaign replaces the campaign details and re-filters the catalogs for its type.
// Scores of categories hidden by the new type are kept but ignored by aggregation.
func (s *Session) SetCampaign(info schema.CampaignInfo) error {
	if err := ValidateCampaign(&info); err != nil {
		return err
	}
	info.Cities = slices.Clone(info.Cities)
	s.campaign = info
	s.active = s.base.Filter(s.selected, info.Type)
	return nil
}

// SetScore records a score for a metric of the active catalog.
func (s *Session) SetScore(key schema.MetricKey, value int) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	score, err := ParseScore(value)
	if err != nil {
		return err
	}
	s.scores[key] = score
	return nil
}

// ClearScore removes a recorded score so the metric reads as unset again.
func (s *Session) ClearScore(key schema.MetricKey) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	delete(s.scores, key)
	return nil
}

// Score returns the recorded score and whether one was recorded.
func (s *Session) Score(key schema.MetricKey) (schema.Score, bool) {
	v, ok := s.scores[key]
	return v, ok
}

// SetComment records free text for a metric. An empty comment removes it.
func (s *Session) SetComment(key schema.MetricKey, text string) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	if text == "" {
		delete(s.comments, key)
		return nil
	}
	s.comments[key] = text
	return nil
}

// Comment returns the comment of a metric, or "" when there is none.
func (s *Session) Comment(key schema.MetricKey) string {
	return s.comments[key]
}

// Scores lists recorded scores of the active catalogs in catalog order.
func (s *Session) Scores() []schema.ScoreEntry {
	var out []schema.ScoreEntry
	s.eachMetric(func(key schema.MetricKey) {
		if v, ok := s.scores[key]; ok {
			out = append(out, schema.ScoreEntry{MetricKey: key, Score: v})
		}
	})
	return out
}

// Comments lists recorded comments of the active catalogs in catalog order.
func (s *Session) Comments() []schema.CommentEntry {
	var out []schema.CommentEntry
	s.eachMetric(func(key schema.MetricKey) {
		if c, ok := s.comments[key]; ok {
			out = append(out, schema.CommentEntry{MetricKey: key, Comment: c})
		}
	})
	return out
}

// Reset discards all scores and comments and the campaign details.
func (s *Session) Reset() {
	s.campaign = schema.CampaignInfo{Type: schema.StandardCampaign}
	s.active = s.base.Filter(s.selected, s.campaign.Type)
	clear(s.scores)
	clear(s.comments)
}

func (s *Session) eachMetric(fn func(schema.MetricKey)) {
	for _, phase := range schema.AllPhases {
		for _, cat := range s.Catalog(phase).Categories() {
			for _, m := range cat.Metrics {
				fn(schema.NewMetricKey(phase, cat.Name, m))
			}
		}
	}
}

func (s *Session) checkKey(key schema.MetricKey) error {
	c := s.Catalog(key.Phase)
	if c == nil {
		return fmt.Errorf("%w: '%s'", ErrUnknownPhase, key.Phase)
	}
	if !c.HasMetric(key.Category, key.Metric) {
		return fmt.Errorf("%w: %s / %s / %s", ErrUnknownMetric, key.Phase, key.Category, key.Metric)
	}
	return nil
}

// ParsePhase converts user input into a Phase.
func ParsePhase(s string) (schema.Phase, error) {
	p, ok := schema.LookupPhase(s)
	if !ok {
		return "", fmt.Errorf("%w: '%s' (must be pre or post)", ErrUnknownPhase, s)
	}
	return p, nil
}

// ParseScore converts user input into a Score.
func ParseScore(n int) (schema.Score, error) {
	v, ok := schema.LookupScore(n)
	if !ok {
		return 0, fmt.Errorf("%w: %d (must be 0, 3 or 5)", ErrInvalidScore, n)
	}
	return v, nil
}

// ParseCampaignType converts user input into a CampaignType. Empty input means standard.
func ParseCampaignType(s string) (schema.CampaignType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return schema.StandardCampaign, nil
	}
	ct := schema.CampaignType(s)
	if _, ok := schema.ValidCampaignTypes[ct]; !ok {
		return "", fmt.Errorf("%w: '%s' (must be standard, influencer or tiktok)", ErrInvalidCampaignType, s)
	}
	return ct, nil
}

// ValidateCampaign normalizes the campaign type and rejects an end date before the start date.
func ValidateCampaign(info *schema.CampaignInfo) error {
	ct, err := ParseCampaignType(string(info.Type))
	if err != nil {
		return err
	}
	info.Type = ct
	if !info.StartDate.IsZero() && !info.EndDate.IsZero() && info.EndDate.Before(info.StartDate) {
		return fmt.Errorf("%w: start %s, end %s", ErrInvalidDateRange,
			schema.FormatDate(info.StartDate), schema.FormatDate(info.EndDate))
	}
	return nil
}
