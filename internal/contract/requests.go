package contract

import (
	"fmt"

	"github.com/huangsam/scorecard/schema"
)

// CampaignRequest is the payload that replaces the campaign details of a session.
// Cities is a comma-separated list. An empty CampaignType keeps the session's type.
type CampaignRequest struct {
	Name         string `json:"name" validate:"max=200"`
	CampaignDate string `json:"campaign_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartDate    string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ClientName   string `json:"client_name" validate:"max=200"`
	Country      string `json:"country" validate:"max=100"`
	Cities       string `json:"cities" validate:"max=1000"`
	CampaignType string `json:"campaign_type,omitempty" validate:"omitempty,oneof=standard influencer tiktok"`
}

// CampaignInfo converts the request into campaign details.
func (r CampaignRequest) CampaignInfo() (schema.CampaignInfo, error) {
	info := schema.CampaignInfo{
		Name:       r.Name,
		ClientName: r.ClientName,
		Country:    r.Country,
		Cities:     schema.SplitCities(r.Cities),
		Type:       schema.CampaignType(r.CampaignType),
	}
	var err error
	if info.CampaignDate, err = schema.ParseDate(r.CampaignDate); err != nil {
		return info, fmt.Errorf("campaign_date: %w", err)
	}
	if info.StartDate, err = schema.ParseDate(r.StartDate); err != nil {
		return info, fmt.Errorf("start_date: %w", err)
	}
	if info.EndDate, err = schema.ParseDate(r.EndDate); err != nil {
		return info, fmt.Errorf("end_date: %w", err)
	}
	return info, nil
}

// MetricRequest addresses one metric of a session.
type MetricRequest struct {
	Phase    string `json:"phase" validate:"required,oneof=pre post"`
	Category string `json:"category" validate:"required"`
	Metric   string `json:"metric" validate:"required"`
}

// Key returns the metric key addressed by the request.
func (r MetricRequest) Key() schema.MetricKey {
	return schema.NewMetricKey(schema.Phase(r.Phase), r.Category, r.Metric)
}

// ScoreRequest records a score. Score is a pointer so a missing value is told apart from 0.
type ScoreRequest struct {
	MetricRequest
	Score *int `json:"score" validate:"required,oneof=0 3 5"`
}

// CommentRequest records a comment. An empty comment removes it.
type CommentRequest struct {
	MetricRequest
	Comment string `json:"comment" validate:"max=2000"`
}
