package schema

import "slices"

// Category is a named, ordered list of metrics within one phase.
type Category struct {
	Name    string   `json:"name" yaml:"name"`
	Metrics []string `json:"metrics" yaml:"metrics"`

	// RequiresCampaignType hides the category unless the campaign is of this type.
	RequiresCampaignType CampaignType `json:"requires_campaign_type,omitempty" yaml:"requires_campaign_type,omitempty"`
}

// HasMetric reports whether the category lists the metric.
func (c Category) HasMetric(metric string) bool {
	return slices.Contains(c.Metrics, metric)
}

// CatalogListing is the printable form of the active pre and post catalogs.
type CatalogListing struct {
	CampaignType CampaignType `json:"campaign_type"`
	Pre          []Category   `json:"pre"`
	Post         []Category   `json:"post"`
}
