// Package schema has models, constants and helpers shared by all parts of scorecard.
package schema

import "time"

// MetricKey identifies a single checklist item within a phase.
// It is the key for both the score store and the comment store.
type MetricKey struct {
	Phase    Phase  `json:"phase" yaml:"phase"`
	Category string `json:"category" yaml:"category"`
	Metric   string `json:"metric" yaml:"metric"`
}

// NewMetricKey builds a MetricKey.
func NewMetricKey(phase Phase, category, metric string) MetricKey {
	return MetricKey{Phase: phase, Category: category, Metric: metric}
}

// CampaignInfo holds the descriptive attributes of a campaign.
type CampaignInfo struct {
	Name         string       `json:"name" yaml:"name"`
	CampaignDate time.Time    `json:"campaign_date" yaml:"campaign_date"`
	StartDate    time.Time    `json:"start_date" yaml:"start_date"`
	EndDate      time.Time    `json:"end_date" yaml:"end_date"`
	ClientName   string       `json:"client_name" yaml:"client_name"`
	Country      string       `json:"country" yaml:"country"`
	Cities       []string     `json:"cities" yaml:"cities"`
	Type         CampaignType `json:"campaign_type" yaml:"campaign_type"`
}

// ScoreEntry is a flattened view of one stored score.
type ScoreEntry struct {
	MetricKey `yaml:",inline"`
	Score     Score `json:"score" yaml:"score"`
}

// CommentEntry is a flattened view of one stored comment.
type CommentEntry struct {
	MetricKey `yaml:",inline"`
	Comment   string `json:"comment" yaml:"comment"`
}
